package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/logger"
)

type ctxKey struct{}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("visible", logger.Component("test"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "test", rec["component"])
}

func TestNew_WithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production logs json at info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("prod", "regform"))
		log.Debug("hidden")
		log.Info("shown")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
		assert.Equal(t, "regform", rec["service"])
		assert.Equal(t, logger.EnvProduction, rec["env"])
	})

	t.Run("unknown environment falls back to development text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("laptop", "regform"))
		log.Debug("debug line")

		out := buf.String()
		assert.Contains(t, out, "msg=\"debug line\"")
		assert.Contains(t, out, "env=development")
		assert.Contains(t, out, "service=regform")
	})

	t.Run("staging alias", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("stage", ""))
		log.Info("x")
		assert.Contains(t, buf.String(), `"env":"staging"`)
		assert.NotContains(t, buf.String(), `"service"`)
	})
}

func TestWithFormat(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText), logger.WithLevel(slog.LevelWarn))
	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("static", "yes")),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			if !ok {
				return slog.Attr{}, false
			}
			return slog.String("request_id", v), true
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(logger.Field("email")).InfoContext(ctx, "with id")
	log.InfoContext(context.Background(), "without id")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "req-1", first["request_id"])
	assert.Equal(t, "email", first["field"])
	assert.Equal(t, "yes", first["static"])
	assert.NotContains(t, second, "request_id")
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
	assert.Equal(t, int64(3), logger.Count(3).Value.Int64())
	assert.Equal(t, int64(502), logger.StatusCode(502).Value.Int64())
	assert.Equal(t, "https://example.com", logger.URL("https://example.com").Value.String())

	g := logger.Group("form", logger.Field("age"), logger.Event("invalid"))
	assert.Equal(t, "form", g.Key)
	assert.Len(t, g.Value.Group(), 2)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { log.With("a", 1).WithGroup("g").Error("nothing") })
}
