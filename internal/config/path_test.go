package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "tilde prefix", input: "~/data/ledger.db", want: filepath.Join(home, "data/ledger.db")},
		{name: "bare tilde", input: "~", want: home},
		{name: "absolute untouched", input: "/var/lib/hishab.db", want: "/var/lib/hishab.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestExpandPathEnvVar(t *testing.T) {
	t.Setenv("HISHAB_TEST_DIR", "/tmp/hishab-test")
	assert.Equal(t, "/tmp/hishab-test/data.db", ExpandPath("$HISHAB_TEST_DIR/data.db"))
}

func TestDataPathDefault(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local/share/hishab/hishab.db"), DataPath())
}

func TestDataPathConfigured(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("data.path", "/opt/hishab/ledger.db")
	assert.Equal(t, "/opt/hishab/ledger.db", DataPath())
}
