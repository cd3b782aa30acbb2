package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafabene/vendas-api/internal/domain/ports"
)

// ZerologLogger implementa ports.Logger usando zerolog
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger cria um logger estruturado.
// Em development usa saída legível; nos demais ambientes, JSON em stdout.
func NewZerologLogger(env, level string) ports.Logger {
	var w io.Writer = os.Stdout
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWriterLogger(w, level)
}

// NewWriterLogger cria um logger JSON escrevendo em w
func NewWriterLogger(w io.Writer, level string) ports.Logger {
	zl := zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{logger: zl}
}

// ParseLevel converte o nível textual para zerolog; vazio ou desconhecido vira info
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *ZerologLogger) Info(msg string, args ...any) {
	l.logger.Info().Fields(toFields(args)).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, args ...any) {
	l.logger.Error().Fields(toFields(args)).Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, args ...any) {
	l.logger.Debug().Fields(toFields(args)).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, args ...any) {
	l.logger.Warn().Fields(toFields(args)).Msg(msg)
}

func (l *ZerologLogger) With(args ...any) ports.Logger {
	return &ZerologLogger{
		logger: l.logger.With().Fields(toFields(args)).Logger(),
	}
}

// toFields converte pares chave/valor no estilo slog para um mapa de campos.
// Uma chave sem valor vira "!BADKEY".
func toFields(args []any) map[string]any {
	fields := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if i+1 >= len(args) {
			fields["!BADKEY"] = key
			break
		}
		value := args[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		fields[key] = value
	}
	return fields
}
