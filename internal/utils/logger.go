package utils

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Log is the process logger. It writes to stderr at info level until Init
// is called.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
})

func levelStyle(label, bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).Bold(true)
}

// Init rebuilds Log at the given level ("debug", "info", "warn", "error").
// Unknown levels fall back to info.
func Init(level string) {
	InitWriter(os.Stderr, level)
}

func InitWriter(w io.Writer, level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
		Prefix:          "poker",
	})

	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = levelStyle("DEBUG", "#44444480", "#DDDDDDFF")
	styles.Levels[log.InfoLevel] = levelStyle("INFO", "#90EE9080", "#006400FF")
	styles.Levels[log.WarnLevel] = levelStyle("WARN", "#FFD70080", "#000000FF")
	styles.Levels[log.ErrorLevel] = levelStyle("ERROR", "#FF0000FF", "#00FFFF00")
	styles.Levels[log.FatalLevel] = levelStyle("FATAL", "#000000FF", "#00FFFF00")
	l.SetStyles(styles)

	Log = l
}
