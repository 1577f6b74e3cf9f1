package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	closer()
}

func TestNewFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "balloon.log")

	logger, closer, err := New("warn", file)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	logger.Warn().Str("id", "abc").Msg("kept")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "abc", entry["id"])
	assert.Equal(t, zerolog.WarnLevel.String(), entry["level"])
}
