package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-panel"
	"github.com/grindlemire/go-panel/internal/config"
)

func TestInitialize(t *testing.T) {
	t.Run("console output respects the level", func(t *testing.T) {
		ResetForTest()
		t.Cleanup(ResetForTest)

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "test"}, zapcore.AddSync(&buf))
		GetLogger().Debug("hidden")
		GetLogger().Info("laid out", zap.String("file", "page.panel"))
		Sync()

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "laid out")
		assert.Contains(t, out, "page.panel")
		assert.Contains(t, out, "test")
	})

	t.Run("json output", func(t *testing.T) {
		ResetForTest()
		t.Cleanup(ResetForTest)

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "debug", Format: "json", ServiceName: "test"}, zapcore.AddSync(&buf))
		GetLogger().Debug("measured", zap.Int("nodes", 3))
		Sync()

		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
		assert.Contains(t, buf.String(), `"nodes":3`)
	})

	t.Run("bad level falls back to warn", func(t *testing.T) {
		ResetForTest()
		t.Cleanup(ResetForTest)

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "loud", Format: "json"}, zapcore.AddSync(&buf))
		GetLogger().Info("quiet")
		GetLogger().Warn("shown")
		Sync()

		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("only the first call wins", func(t *testing.T) {
		ResetForTest()
		t.Cleanup(ResetForTest)

		var first, second bytes.Buffer
		Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&first))
		Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&second))
		GetLogger().Info("once")
		Sync()

		assert.Contains(t, first.String(), "once")
		assert.Empty(t, second.String())
	})

	t.Run("log file", func(t *testing.T) {
		ResetForTest()
		t.Cleanup(ResetForTest)

		path := filepath.Join(t.TempDir(), "panel.log")
		Initialize(config.LoggerConfig{Level: "info", Format: "console", LogFile: path, MaxSize: 1}, zapcore.AddSync(&bytes.Buffer{}))
		GetLogger().Info("to file")
		Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"to file"`)
	})
}

func TestGetLogger_BeforeInitialize(t *testing.T) {
	ResetForTest()
	assert.NotNil(t, GetLogger())
	assert.NotPanics(t, func() { GetLogger().Info("dropped") })
}

func TestEnableTrace(t *testing.T) {
	t.Cleanup(DisableTrace)

	var buf bytes.Buffer
	EnableTrace(&buf, []string{panel.CategoryCache})

	tree := panel.NewTree()
	tree.SetRoot(tree.NewNode(panel.WithIntrinsicSize(10, 10), panel.WithTag("only")))
	require.NoError(t, tree.UpdateLayout(panel.NewSize(20, 20)))
	require.NoError(t, tree.UpdateLayout(panel.NewSize(20, 20)))

	out := buf.String()
	assert.Contains(t, out, "measure leaf only")
	assert.Contains(t, out, "category=layout")
	assert.NotContains(t, out, "category=cache")

	DisableTrace()
	buf.Reset()
	require.NoError(t, tree.UpdateLayout(panel.NewSize(30, 30)))
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
