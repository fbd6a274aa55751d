package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureBuffer(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	t.Cleanup(func() {
		Configure(Config{Level: InfoLevel, Output: io.Discard})
	})
	var buf bytes.Buffer
	Configure(Config{Level: level, Output: &buf})
	return &buf
}

func entries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestConfigureWritesJSONWithService(t *testing.T) {
	buf := configureBuffer(t, DebugLevel)

	Info().Int64("userID", 7).Msg("Student registered")

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "lms", got[0]["service"])
	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "Student registered", got[0]["message"])
	assert.EqualValues(t, 7, got[0]["userID"])
	assert.NotEmpty(t, got[0]["time"])
}

func TestConfigureFiltersBelowLevel(t *testing.T) {
	buf := configureBuffer(t, WarnLevel)

	Debug().Msg("hidden")
	Info().Msg("hidden")
	Warn().Msg("shown")
	Error().Msg("shown")

	got := entries(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "warn", got[0]["level"])
	assert.Equal(t, "error", got[1]["level"])
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	buf := configureBuffer(t, LogLevel("verbose"))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Debug().Msg("hidden")
	Info().Msg("shown")
	assert.Len(t, entries(t, buf), 1)
}

func TestComponentTagsEntries(t *testing.T) {
	buf := configureBuffer(t, InfoLevel)

	l := Component("migrations")
	l.Info().Msg("OK 00001_init.sql")

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "migrations", got[0]["component"])
	assert.Equal(t, "lms", got[0]["service"])
}

func TestConfigureReturnsInstalledLogger(t *testing.T) {
	buf := configureBuffer(t, InfoLevel)
	var other bytes.Buffer
	l := Configure(Config{Level: InfoLevel, Output: &other})

	l.Info().Msg("via returned logger")
	Info().Msg("via package helper")

	assert.Empty(t, buf.String())
	assert.Equal(t, 2, strings.Count(other.String(), "\n"))
}

func TestFromSettings(t *testing.T) {
	tests := []struct {
		level, format string
		want          Config
	}{
		{"debug", "json", Config{Level: DebugLevel, Output: os.Stdout}},
		{" WARN ", "text", Config{Level: WarnLevel, Pretty: true, Output: os.Stdout}},
		{"", "TEXT", Config{Level: "", Pretty: true, Output: os.Stdout}},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, FromSettings(tt.level, tt.format))
		})
	}
}
