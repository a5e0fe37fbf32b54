package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshariful/hishab/internal/common"
)

func TestSetupLoggingRejectsBadConfig(t *testing.T) {
	defer viper.Reset()

	viper.Set("logging.level", "verbose")
	viper.Set("logging.format", "console")
	err := setupLogging()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	viper.Set("logging.level", "info")
	viper.Set("logging.format", "xml")
	err = setupLogging()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() {
		cfgFile = ""
		viper.Reset()
	}()

	err := initConfig(nil, nil)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}
