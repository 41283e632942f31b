package logger

import (
	"io"
	"os"
	"time"

	"frontdesk/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	InitLoggerWithWriter(os.Stdout)
}

// InitLoggerWithWriter points the global logger at out using the console format.
func InitLoggerWithWriter(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	SetLogLevelFromString(config.Server.LogLevel)
}

// SetLogLevelFromString falls back to trace when level is empty or unknown.
func SetLogLevelFromString(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.TraceLevel
		log.Trace().Str("loglevel", parsed.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", parsed.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(parsed)
}
