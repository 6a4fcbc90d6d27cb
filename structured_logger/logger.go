package structured_logger

import (
	"fmt"
	"os"

	"bsearch"

	"github.com/rs/zerolog"
)

type Logger zerolog.Logger
type LogEntry struct {
	*zerolog.Event
}

func NewLogger(logLevel string) *Logger {
	if l, err := zerolog.ParseLevel(logLevel); err == nil {
		zerolog.SetGlobalLevel(l)
	}
	ret := Logger(zerolog.New(os.Stderr).With().Timestamp().Logger())
	return &ret
}

func (l *Logger) Debug() bsearch.LogEntry {
	return LogEntry{(*zerolog.Logger)(l).Debug()}
}

func (l *Logger) Info() bsearch.LogEntry {
	return LogEntry{(*zerolog.Logger)(l).Info()}
}

func (l *Logger) Warn() bsearch.LogEntry {
	return LogEntry{(*zerolog.Logger)(l).Warn()}
}

func (l *Logger) Err() bsearch.LogEntry {
	return LogEntry{(*zerolog.Logger)(l).Error()}
}

func (l LogEntry) Value(key string, value any) bsearch.LogEntry {
	switch v := value.(type) {
	case string:
		return LogEntry{l.Str(key, v)}
	case int:
		return LogEntry{l.Int(key, v)}
	case bool:
		return LogEntry{l.Bool(key, v)}
	default:
		return LogEntry{l.Str(key, fmt.Sprint(v))}
	}
}

func (l LogEntry) Msg(msg string) {
	l.Event.Msg(msg)
}
