// Package util provides logging helpers, directory lookup, the list filter
// query parser and small generic helpers.
package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// OpenLogFile points the standard logger at path, creating parent
// directories. The caller closes the returned file. An empty path discards
// log output.
func OpenLogFile(path, prefix string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
