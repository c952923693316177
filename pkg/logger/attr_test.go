package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asserttypes/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestOperation(t *testing.T) {
	attr := logger.Operation("posInt")
	require.Equal(t, "operation", attr.Key)
	assert.Equal(t, "posInt", attr.Value.String())
}

func TestKind(t *testing.T) {
	attr := logger.Kind("mismatch")
	require.Equal(t, "kind", attr.Key)
	assert.Equal(t, "mismatch", attr.Value.String())
}

func TestArgs(t *testing.T) {
	attr := logger.Args([]any{"str", 42, nil})
	require.Equal(t, "args", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "str", g[0].Value.String())
	assert.Equal(t, "42", g[1].Value.String())
	assert.Equal(t, "<nil>", g[2].Value.String())
}

func TestFileAndDocument(t *testing.T) {
	f := logger.File("data.yaml")
	assert.Equal(t, "file", f.Key)
	assert.Equal(t, "data.yaml", f.Value.String())

	d := logger.Document(2)
	assert.Equal(t, "document", d.Key)
	assert.Equal(t, int64(2), d.Value.Int64())
}
