package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		tag     string
		want    Theme
		wantErr bool
	}{
		{tag: "light", want: Light},
		{tag: " DARK ", want: Dark},
		{tag: "sepia", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := Parse(tt.tag)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownTheme)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTheme_Pick(t *testing.T) {
	assert.Equal(t, "bg-white", Light.Pick("bg-white", "bg-slate"))
	assert.Equal(t, "bg-slate", Dark.Pick("bg-white", "bg-slate"))
	assert.Equal(t, "bg-white", Theme("").Pick("bg-white", "bg-slate"))
}

func TestTheme_Other(t *testing.T) {
	assert.Equal(t, Dark, Light.Other())
	assert.Equal(t, Light, Dark.Other())
}
