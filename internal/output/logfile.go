package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If TRAIL_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.trail/logs/trail.log
func GetLogFilePath() string {
	if customPath := os.Getenv("TRAIL_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "trail.log"
	}

	return filepath.Join(homeDir, ".trail", "logs", "trail.log")
}
