package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDump(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "toml", args: []string{"config", "dump", "--config", "../etc/"}, want: "[Webserver]"},
		{name: "json", args: []string{"config", "dump", "--json", "--config", "../etc/"}, want: `"Webserver"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			rootCmd.SetOut(&out)
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() {
				dumpJSON = false
				rootCmd.SetArgs(nil)
			})

			require.NoError(t, rootCmd.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["start"])
	assert.True(t, names["seed"])
	assert.True(t, names["config"])
}
