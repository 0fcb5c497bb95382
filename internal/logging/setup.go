package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"nutriplan-go/internal/config"
)

var (
	logMux        sync.Mutex
	logFileHandle *os.File
)

// Setup configures the global logrus logger. Calling it again replaces the
// previous formatter and closes any log file it had opened.
func Setup(cfg *config.Config) error {
	logMux.Lock()
	defer logMux.Unlock()

	debug := cfg != nil && cfg.Security.Debug
	if debug {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339Nano})
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
		log.SetLevel(log.InfoLevel)
	}

	if logFileHandle != nil {
		_ = logFileHandle.Close()
		logFileHandle = nil
	}

	writers := []io.Writer{os.Stdout}
	if cfg != nil && cfg.Security.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Security.LogFile), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.Security.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFileHandle = file
		writers = append(writers, file)
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file, if any. Output falls back to stdout.
func Close() {
	logMux.Lock()
	defer logMux.Unlock()
	if logFileHandle != nil {
		log.SetOutput(os.Stdout)
		_ = logFileHandle.Close()
		logFileHandle = nil
	}
}
