package nts

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(consoleWriter()).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

func consoleWriter() io.Writer {
	out := io.Writer(os.Stderr)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return out
}

// Logger returns the package logger. It defaults to warnings-and-up on
// stderr, pretty-printed when stderr is a terminal.
func Logger() zerolog.Logger {
	return logger
}

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// DisableLogger silences the package logger.
func DisableLogger() {
	logger = zerolog.Nop()
}
