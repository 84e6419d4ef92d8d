package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the root logger. Development environments get the console
// writer; everything else emits JSON lines.
func New(level, appEnv string) zerolog.Logger {
	zerolog.ErrorFieldName = "err"

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if appEnv == "development" {
		cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		log = zerolog.New(cw)
	} else {
		log = zerolog.New(os.Stdout)
	}
	return log.Level(lvl).With().Timestamp().Logger()
}
