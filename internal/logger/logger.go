// Package logger provides the process-wide logger shared by the host-side
// components, backed by github.com/rs/zerolog with a console writer.
//
// Guest programs never log: nothing may leak through the boundary a guest
// reports its outcome on.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		log = zerolog.Nop()
	}
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// SetLevel sets the minimum level of the global logger.
func SetLevel(lvl zerolog.Level) {
	log = log.Level(lvl)
}

// Disable silences the global logger.
func Disable() {
	log = zerolog.Nop()
}
