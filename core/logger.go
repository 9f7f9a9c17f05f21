package core

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log levels accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. The terminal owns stdout while a session
// runs, so this is the default.
func NopLogger() Logger { return noopLogger{} }

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// NewSlogLogger writes JSON records at or above level to out.
func NewSlogLogger(out io.Writer, level slog.Level, attrs ...slog.Attr) Logger {
	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h.WithAttrs(attrs))}
}

type slogLogger struct{ l *slog.Logger }

func (s *slogLogger) Debugf(f string, a ...any) { s.l.Debug(fmt.Sprintf(f, a...)) }
func (s *slogLogger) Infof(f string, a ...any)  { s.l.Info(fmt.Sprintf(f, a...)) }
func (s *slogLogger) Warnf(f string, a ...any)  { s.l.Warn(fmt.Sprintf(f, a...)) }
func (s *slogLogger) Errorf(f string, a ...any) { s.l.Error(fmt.Sprintf(f, a...)) }

// FmtLogger writes one plain line per call to w (for tests).
func FmtLogger(w io.Writer) Logger { return fmtLogger{w: w} }

type fmtLogger struct{ w io.Writer }

func (l fmtLogger) Debugf(f string, a ...any) { fmt.Fprintf(l.w, "DEBUG "+f+"\n", a...) }
func (l fmtLogger) Infof(f string, a ...any)  { fmt.Fprintf(l.w, "INFO  "+f+"\n", a...) }
func (l fmtLogger) Warnf(f string, a ...any)  { fmt.Fprintf(l.w, "WARN  "+f+"\n", a...) }
func (l fmtLogger) Errorf(f string, a ...any) { fmt.Fprintf(l.w, "ERROR "+f+"\n", a...) }
