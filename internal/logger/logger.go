package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

// Log emits diagnostics on stderr; game text owns stdout.
type Log struct {
	zl  zerolog.Logger
	err error
}

func New() *Log {
	return &Log{zl: base}
}

// SetLevel applies a named level globally. Unknown names fall back to info.
func SetLevel(name string) {
	if name == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}

	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		New().WithError(err).Warn("unknown log level, using info")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

func (l *Log) WithError(err error) *Log {
	c := *l
	c.err = err
	return &c
}

func (l *Log) Debug(msg string) {
	l.zl.Debug().Err(l.err).Msg(msg)
}

func (l *Log) Info(msg string) {
	l.zl.Info().Err(l.err).Msg(msg)
}

func (l *Log) Warn(msg string) {
	l.zl.Warn().Err(l.err).Msg(msg)
}

func (l *Log) Error(msg string) {
	l.zl.Error().Err(l.err).Msg(msg)
}
