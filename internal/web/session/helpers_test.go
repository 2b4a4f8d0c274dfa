package session_test

import (
	"encoding/json"
	"net/http"
)

func jsonBody(resp *http.Response, v any) error {
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(v)
}
