package logger

import (
	"os"
	"path/filepath"
	"testing"

	"PortfolioSite/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")

	log, err := Init(config.Config{LogFile: path, LogLevel: "debug"})
	require.NoError(t, err)
	defer zap.ReplaceGlobals(zap.NewNop())

	log.Info("TestInit(): hello", zap.String("k", "v"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TestInit(): hello")
	assert.Same(t, log, zap.L())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}
