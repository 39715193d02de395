package planar

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with timestamps formatted as
// "HH:MM:SS.ms", filtering messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "planar",
	})
}
