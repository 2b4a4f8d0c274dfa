// Package session keeps each visitor's page selection in the fiber session.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const viewKey = "view"

// Store is the global session store instance.
var Store *session.Store //nolint:gochecknoglobals

// ViewState is the selection a visitor made on the page. A nil Menu means
// every mega menu is collapsed; empty keys mean the section default.
type ViewState struct {
	Menu     *int   `json:"menu,omitempty"`
	News     string `json:"news,omitempty"`
	Resource string `json:"resource,omitempty"`
}

// Config configures the session store.
type Config struct {
	Expiration time.Duration
	CookieName string
	Secure     bool
}

// Init initializes the session store. A nil storage keeps sessions in
// process memory.
func Init(storage fiber.Storage, cfg Config) {
	Store = session.New(session.Config{
		Storage:        storage,
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieSecure:   cfg.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Load returns the visitor's view state. A missing or unreadable state
// yields the zero state.
func Load(c *fiber.Ctx) (ViewState, error) {
	var state ViewState

	sess, err := Store.Get(c)
	if err != nil {
		return state, errors.Wrap(err, "failed to get session")
	}

	raw, ok := sess.Get(viewKey).(string)
	if !ok || raw == "" {
		return state, nil
	}

	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		log.Debug().Err(err).Msg("discarding unreadable view state")
		return ViewState{}, nil
	}

	return state, nil
}

// Save stores the visitor's view state.
func Save(c *fiber.Ctx, state ViewState) error {
	sess, err := Store.Get(c)
	if err != nil {
		return errors.Wrap(err, "failed to get session")
	}

	out, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode view state")
	}

	sess.Set(viewKey, string(out))

	return errors.Wrap(sess.Save(), "failed to save session")
}

// Update loads the view state, applies fn and saves the result.
func Update(c *fiber.Ctx, fn func(*ViewState)) error {
	state, err := Load(c)
	if err != nil {
		return err
	}

	fn(&state)

	return Save(c, state)
}
