package resource_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/next-trace/scg-resource/resource"
)

func TestField_EncodesFailureAsObject(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	timeout := errors.New("i/o timeout")
	e := resource.Wrap(resource.GetFailed("http://x/a.jar", timeout), "resolving dependency X")

	logger.Error("dependency resolution failed", resource.Field(e))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()

	obj, ok := fields["error"].(map[string]interface{})
	require.True(t, ok, "error field should be an object, got %T", fields["error"])

	assert.Equal(t, "resolving dependency X", obj["message"])
	assert.Equal(t, true, obj["contextual"])
	assert.NotContains(t, obj, "location")
	assert.Equal(t, []interface{}{
		"Could not get resource 'http://x/a.jar'",
		"i/o timeout",
	}, obj["causes"])
}

func TestField_LocationAndTerminal(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Warn("missing", resource.Field(resource.GetMissing("file:///tmp/a")))

	obj := logs.All()[0].ContextMap()["error"].(map[string]interface{})
	assert.Equal(t, "file:///tmp/a", obj["location"])
	assert.NotContains(t, obj, "causes")
}

func TestField_FallsBackToZapError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Error("plain", resource.Field(errors.New("boom")))

	assert.Equal(t, "boom", logs.All()[0].ContextMap()["error"])
}

func TestLogValue_Slog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := resource.PutFailed("s3://bucket/key", errors.New("access denied"))
	logger.Error("upload failed", slog.Any("error", e))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	group, ok := record["error"].(map[string]any)
	require.True(t, ok, "error should be a group, got %T", record["error"])

	assert.Equal(t, "Could not write to resource 's3://bucket/key'", group["message"])
	assert.Equal(t, "s3://bucket/key", group["location"])
	assert.Equal(t, true, group["contextual"])
	assert.Equal(t, []any{"access denied"}, group["causes"])
}
