// Package logging renders engine events as timestamped console lines.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// TimeFormat is the layout of the timestamp printed in front of every line.
const TimeFormat = "15:04:05"

// NewLogger creates a logger that prints "[15:04:05] message" lines to out.
// Fields, if any, are printed after the message.
func NewLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(out),
		NoColor:    true,
		PartsOrder: []string{zerolog.TimestampFieldName, zerolog.MessageFieldName},
		FormatTimestamp: func(i any) string {
			return "[" + formatTimestamp(i) + "]"
		},
		FormatFieldName: func(i any) string {
			return fmt.Sprintf("%s=", i)
		},
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// ParseLevel converts a level name into a zerolog level. An empty name means
// info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}

	return level, nil
}

func formatTimestamp(i any) string {
	s, ok := i.(string)
	if !ok {
		return time.Now().Format(TimeFormat)
	}

	t, err := time.Parse(zerolog.TimeFieldFormat, s)
	if err != nil {
		return s
	}

	return t.Local().Format(TimeFormat)
}
