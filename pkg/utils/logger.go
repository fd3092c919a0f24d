package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger for debug messages. The TUI owns stdout, so logs only go to a file.
var (
	isVerbose = false
	logFile   *os.File
	logger    *log.Logger
)

// DefaultLogPath returns the log file used when none is configured
func DefaultLogPath() string {
	return fmt.Sprintf("/tmp/moodtodo_%s.log", time.Now().Format("2006-01-02"))
}

// Log prints debug messages to the log file if verbose mode is enabled
func Log(text string, args ...interface{}) {
	if isVerbose && logger != nil {
		logger.Debugf(text, args...)
	}
}

// InitLogger initializes the logging system. An empty path uses DefaultLogPath.
func InitLogger(verbose bool, path string) error {
	isVerbose = verbose
	if !verbose {
		return nil
	}

	if path == "" {
		path = DefaultLogPath()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		isVerbose = false
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(logFile, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "moodtodo",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	Log("Verbose logging enabled")
	return nil
}

// CloseLogger closes the log file if it's open
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil
	isVerbose = false
}
