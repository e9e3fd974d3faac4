package unittest

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var verbose = flag.Bool("vv", false, "print debugging logs")

// LogVerbose turns on test log output, as if -vv was passed.
func LogVerbose() {
	*verbose = true
}

// Logger returns a zerolog
// use -vv flag to print debugging logs for tests
func Logger() zerolog.Logger {
	return LoggerWithHook(nil)
}

// LoggerWithHook returns the test logger with a hook attached, so tests can
// observe emitted events even when output is discarded.
func LoggerWithHook(hook zerolog.Hook) zerolog.Logger {
	var writer io.Writer = io.Discard
	if *verbose {
		writer = os.Stderr
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	if hook != nil {
		log = log.Hook(hook)
	}
	return log
}

// Message returns n deterministic, non-constant bytes.
func Message(n int) []byte {
	msg := make([]byte, n)
	for i := range msg {
		msg[i] = byte(i*7 + 3)
	}
	return msg
}
