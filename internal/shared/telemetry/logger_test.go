package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEmitsJSONWithFields(t *testing.T) {
	Init("test", "production", "debug")
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("analysis.complete", map[string]any{"match_percentage": 82, "request_id": "req-1"})

	var payload map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload))
	assert.Equal(t, "info", payload["level"])
	assert.Equal(t, "analysis.complete", payload["msg"])
	assert.Equal(t, "req-1", payload["request_id"])
	assert.EqualValues(t, 82, payload["match_percentage"])
	assert.NotEmpty(t, payload["ts"])
}

func TestLevelFiltersDebug(t *testing.T) {
	Init("test", "production", "info")
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("prompt.preview", map[string]any{"prompt": "hidden"})
	Warn("chart.failed", nil)

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "prompt.preview")
	assert.Contains(t, out, "chart.failed")
}
