package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xIceArcher/go-ytstats/config"
	"go.uber.org/zap"
)

func TestInit_WritesLogFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(config.LogConfig{LogPath: dir, Level: "info"}))
	defer zap.ReplaceGlobals(zap.NewNop())

	zap.S().Info("hello")
	zap.S().Error("boom")
	_ = zap.S().Sync()

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "hello")
	assert.Contains(t, string(info), "boom")

	errorLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(errorLog), "hello")
	assert.Contains(t, string(errorLog), "boom")
}

func TestInit_InvalidLevel(t *testing.T) {
	assert.Error(t, Init(config.LogConfig{Level: "loud"}))
}
