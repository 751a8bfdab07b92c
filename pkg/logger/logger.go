package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Campos comunes de los logs del cliente web.
const (
	FieldRequestID = "request_id"
	FieldSession   = "session"
)

// shortIDLen caracteres visibles de un id de sesión en los logs.
const shortIDLen = 8

// Config opciones para el logger.
type Config struct {
	Env    string // development -> consola legible; production -> JSON
	Level  string // trace, debug, info, warn, error
	App    string
	Output io.Writer // nil = stdout
}

// Logger envuelve zerolog: es el logger base del proceso y fabrica los de cada petición.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del proceso y lo deja como global y como logger por defecto de
// zerolog.Ctx, así los casos de uso llamados fuera de una petición también registran.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.App != "" {
		zctx = zctx.Str("app", cfg.App)
	}
	zl := zctx.Logger()

	log.Logger = zl
	zerolog.DefaultContextLogger = &zl

	return &Logger{zl: zl}
}

// Nop logger descartado para tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ParseLevel traduce el nivel textual; desconocido = info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ForRequest sublogger de una petición HTTP con su id, método y ruta.
func (l *Logger) ForRequest(requestID, method, path string) zerolog.Logger {
	return l.zl.With().
		Str(FieldRequestID, requestID).
		Str("method", method).
		Str("path", path).
		Logger()
}

// ShortID recorta un id de sesión: el id completo equivale a la cookie y no se registra.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen] + "…"
}

func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog devuelve el logger interno para los componentes que reciben zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
