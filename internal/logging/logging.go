// Package logging configures the global zerolog sink for the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the console writer on stderr and, when logFile is set,
// duplicates structured output into it. Findings go to stdout; logs stay
// on the diagnostic stream so JSON output remains machine-readable.
func Setup(logFile string, verbose bool) error {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	var sink io.Writer = console
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		sink = zerolog.MultiLevelWriter(console, f)
	}
	log.Logger = zerolog.New(sink).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("verbose log output enabled")
	}
	return nil
}
