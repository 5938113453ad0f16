package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowfilter/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "component", logger.Component("catalog").Key)
	assert.Equal(t, "query", logger.Query("li").Key)
	assert.Equal(t, "table_id", logger.TableID("table").Key)
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}

func TestFilterStats(t *testing.T) {
	attr := logger.FilterStats(2, 1, 3)
	require.Equal(t, "rows", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "shown", g[0].Key)
	assert.Equal(t, int64(2), g[0].Value.Int64())
	assert.Equal(t, int64(1), g[1].Value.Int64())
	assert.Equal(t, int64(3), g[2].Value.Int64())
}
