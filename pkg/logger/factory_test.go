package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowfilter/pkg/logger"
)

type ctxKey struct{}

func TestNewJSONWithExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithEnvironment("production", "rowfilter"),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			return slog.String("request_id", v), ok
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "rows filtered", logger.Query("li"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "rows filtered", rec["msg"])
	assert.Equal(t, "rowfilter", rec["service"])
	assert.Equal(t, "production", rec["env"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "li", rec["query"])
}

func TestDevelopmentIsTextAtDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithEnvironment("development", "rowfilter"),
	)

	log.Debug("debug line")
	assert.Contains(t, buf.String(), "msg=\"debug line\"")
	assert.Contains(t, buf.String(), "env=development")
}

func TestEnvironmentPresets(t *testing.T) {
	tests := []struct {
		env       string
		debug     bool
		jsonLines bool
	}{
		{env: "development", debug: true},
		{env: "staging", debug: true, jsonLines: true},
		{env: "prod", debug: false, jsonLines: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(tt.env, ""))

			assert.Equal(t, tt.debug, log.Enabled(context.Background(), slog.LevelDebug))
			log.Info("line")
			assert.Equal(t, tt.jsonLines, json.Valid(buf.Bytes()), buf.String())
		})
	}
}

func TestExtractorsSurviveWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatText),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			return slog.String("request_id", v), ok
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
	log.With(logger.Component("catalog")).InfoContext(ctx, "listed")

	assert.Contains(t, buf.String(), "component=catalog")
	assert.Contains(t, buf.String(), "request_id=req-2")

	buf.Reset()
	log.Info("no context")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestLevelFiltersRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	assert.Empty(t, buf.String())
	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithFormatPanicsOnUnknownFormat(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
