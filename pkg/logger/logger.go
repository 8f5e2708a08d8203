package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Config opciones para el logger.
type Config struct {
	Env      string    // development -> consola legible; production -> JSON
	Level    string    // trace, debug, info, warn, error
	Name     string    // campo "logger" en cada entrada
	FilePath string    // archivo persistente (JSON); vacío = solo consola
	Console  io.Writer // destino de consola; nil = os.Stderr
}

// Logger wrapper sobre zerolog para inyección y consistencia.
// Escribe a la vez en consola y en el archivo de log.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New crea un logger estructurado. En development la consola es legible; el archivo siempre recibe JSON.
func New(cfg Config) (*Logger, error) {
	var console io.Writer = os.Stderr
	if cfg.Console != nil {
		console = cfg.Console
	}
	if cfg.Env == "development" {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: "2006-01-02 15:04:05"}
	}

	writers := []io.Writer{console}
	var file *os.File
	if cfg.FilePath != "" {
		if dir := filepath.Dir(cfg.FilePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: crear directorio: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: abrir archivo: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().Str("logger", cfg.Name).
		Logger()

	return &Logger{zl: zl, file: file}, nil
}

// Nop devuelve un logger que descarta todo (tests).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Child envuelve un sublogger construido con With().
func (l *Logger) Child(ctx zerolog.Context) *Logger {
	return &Logger{zl: ctx.Logger()}
}

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// Close sincroniza y cierra el archivo de log. Los sublogger no son dueños del archivo.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		_ = l.file.Close()
		return fmt.Errorf("logger: sincronizar archivo: %w", err)
	}
	err := l.file.Close()
	l.file = nil
	return err
}
