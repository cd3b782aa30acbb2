package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger(t *testing.T) {
	t.Run("escreve campos chave/valor em JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWriterLogger(&buf, "info")

		logger.Info("client created", "client_id", 42, "error", errors.New("boom"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "client created", entry["message"])
		assert.EqualValues(t, 42, entry["client_id"])
		assert.Equal(t, "boom", entry["error"])
	})

	t.Run("respeita nível mínimo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWriterLogger(&buf, "warn")

		logger.Debug("ignorado")
		logger.Info("ignorado")
		assert.Zero(t, buf.Len())

		logger.Warn("registrado")
		assert.Contains(t, buf.String(), "registrado")
	})

	t.Run("With adiciona campos fixos", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWriterLogger(&buf, "debug").With("request_id", "abc")

		logger.Error("falhou")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "abc", entry["request_id"])
		assert.Equal(t, "error", entry["level"])
	})

	t.Run("chave sem valor", func(t *testing.T) {
		fields := toFields([]any{"orfa"})
		assert.Equal(t, "orfa", fields["!BADKEY"])
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("qualquer"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}
