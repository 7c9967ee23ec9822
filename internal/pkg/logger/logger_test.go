package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"data-catalog/internal/pkg/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestInitJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "catalog.log")
	require.NoError(t, Init(&config.LogConfig{Level: "info", Format: "json", Output: "file", FilePath: path}))
	t.Cleanup(func() {
		Log = zap.NewNop()
		log = zap.NewNop()
	})

	Debug("hidden")
	Info("可用性检查完成", zap.Int("available", 4))
	GetWriter().Printf("[%.3fms] %s\n", 1.5, "SELECT 1")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "可用性检查完成", entry["msg"])
	assert.EqualValues(t, 4, entry["available"])
	assert.Contains(t, entry["caller"], "internal/pkg/logger/logger_test.go")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "gorm", entry["logger"])
	assert.Equal(t, "[1.500ms] SELECT 1", entry["msg"])
}
