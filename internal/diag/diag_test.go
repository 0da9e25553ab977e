package diag

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	var testCases = []struct {
		input  string
		expect zerolog.Level
	}{
		{input: "", expect: DefaultLevel},
		{input: "debug", expect: zerolog.DebugLevel},
		{input: " WARN ", expect: zerolog.WarnLevel},
		{input: "warning", expect: zerolog.WarnLevel},
		{input: "error", expect: zerolog.ErrorLevel},
		{input: "bogus", expect: DefaultLevel},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ParseLevel(testCase.input), testCase.input)
	}
}

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("warn", buf)
	logger.Info().Msg("skipped")
	logger.Warn().Str("tool", "search").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "search", entry["tool"])
	assert.Equal(t, "beatport-mcp", entry["component"])
}

func TestNew_KeepsGlobalTimeFormat(t *testing.T) {
	before := zerolog.TimeFieldFormat
	_ = New("debug", &bytes.Buffer{})
	assert.Equal(t, before, zerolog.TimeFieldFormat)
}
