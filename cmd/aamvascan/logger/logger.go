// Package logger gives aamvascan a file-backed slog logger. A TUI owns the
// terminal it draws on, so log output must go elsewhere; by default it goes
// nowhere at all.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the process-wide logger. It discards everything until Init enables
// file logging.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	filePrefix = "aamvascan-"
	fileSuffix = ".log"
	keepFor    = 14 * 24 * time.Hour
)

// Init enables JSON logging to a dated file under dir (default:
// ~/.aamvascan/logs) at the given level, and prunes logs older than two
// weeks. Call it from main before the program starts.
func Init(dir string, level slog.Level) error {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("logger: resolve home: %w", err)
		}
		dir = filepath.Join(home, ".aamvascan", "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	prune(dir)

	name := filepath.Join(dir, filePrefix+time.Now().Format("2006-01-02")+fileSuffix)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// prune removes stale log files, judged by modification time. Best effort.
func prune(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-keepFor)
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		os.Remove(filepath.Join(dir, name))
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
