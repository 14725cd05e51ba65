package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/logger"

	"github.com/stretchr/testify/assert"
)

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")

	l, err := logger.New("production", config.LogConfig{
		Level:      "info",
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	})
	assert.NoError(t, err)

	l.Info("roster reset")
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "roster reset")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := logger.New("development", config.LogConfig{Level: "loud"})

	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
	assert.True(t, l.Core().Enabled(0))
}
