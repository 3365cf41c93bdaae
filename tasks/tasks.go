// Package tasks provides the builtin task set: maintenance and diagnostic
// handlers that ship with the dispatcher. Applications register the set as a
// starting point and add their own descriptors next to it.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/taskcall/taskcall/task"
)

// Options configures the builtin task set.
type Options struct {
	// TempDir is pruned by clearTempFiles. Defaults to os.TempDir().
	TempDir string

	// TempMaxAge is the default age threshold for clearTempFiles when the
	// invocation passes no override. Defaults to 24h.
	TempMaxAge time.Duration

	// BackupDir receives database dump files. Defaults to "backups".
	BackupDir string
}

func (o *Options) applyDefaults() {
	if o.TempDir == "" {
		o.TempDir = os.TempDir()
	}
	if o.TempMaxAge <= 0 {
		o.TempMaxAge = 24 * time.Hour
	}
	if o.BackupDir == "" {
		o.BackupDir = "backups"
	}
}

// Builtin returns the builtin task set. The logger must not be nil.
func Builtin(logger *slog.Logger, opts Options) task.Set {
	opts.applyDefaults()
	return task.Set{
		NoParams(logger),
		Params(logger),
		ClearTempFiles(logger, opts.TempDir, opts.TempMaxAge),
		MonitorSystem(logger),
		BackupDatabase(logger, opts.BackupDir),
	}
}

// NoParams is a diagnostic task that takes no arguments and always succeeds.
func NoParams(logger *slog.Logger) task.Descriptor {
	return task.Descriptor{
		Name:        "noParams",
		Description: "diagnostic task with no parameters",
		Handler: func(ctx context.Context, args []any) error {
			logger.Info("noParams task executed")
			return nil
		},
	}
}

// Params is a diagnostic task that logs whatever arguments it receives.
func Params(logger *slog.Logger) task.Descriptor {
	return task.Descriptor{
		Name:        "params",
		Description: "diagnostic task that echoes its parameters",
		Handler: func(ctx context.Context, args []any) error {
			logger.Info("params task executed",
				slog.Int("arg_count", len(args)),
				slog.Any("args", args))
			return nil
		},
	}
}

// ClearTempFiles prunes files in dir older than maxAge. The invocation may
// pass a number of hours as the first argument to override maxAge, e.g.
// clearTempFiles(48).
func ClearTempFiles(logger *slog.Logger, dir string, maxAge time.Duration) task.Descriptor {
	return task.Descriptor{
		Name:        "clearTempFiles",
		Description: "removes temp files older than the age threshold",
		Handler: func(ctx context.Context, args []any) error {
			age := maxAge
			if hours, ok := NumberArg(args, 0); ok {
				age = time.Duration(hours * float64(time.Hour))
			}
			cutoff := time.Now().Add(-age)

			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("read temp dir: %w", err)
			}

			removed := 0
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				info, err := e.Info()
				if err != nil {
					continue
				}
				if info.ModTime().After(cutoff) {
					continue
				}
				path := filepath.Join(dir, e.Name())
				if err := os.Remove(path); err != nil {
					logger.Warn("failed to remove temp file",
						slog.String("path", path),
						slog.String("error", err.Error()))
					continue
				}
				removed++
			}

			logger.Info("temp files cleared",
				slog.String("dir", dir),
				slog.Duration("max_age", age),
				slog.Int("removed", removed))
			return nil
		},
	}
}

// BackupDatabase writes a timestamped dump file into dir. The invocation may
// pass a label as the first argument, e.g. backupDatabase('nightly').
func BackupDatabase(logger *slog.Logger, dir string) task.Descriptor {
	return task.Descriptor{
		Name:        "backupDatabase",
		Description: "writes a timestamped database dump file",
		Handler: func(ctx context.Context, args []any) error {
			label := "manual"
			if s, ok := StringArg(args, 0); ok && s != "" {
				label = s
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create backup dir: %w", err)
			}

			stamp := time.Now().UTC().Format("20060102-150405")
			path := filepath.Join(dir, fmt.Sprintf("backup-%s-%s.sql", label, stamp))
			content := fmt.Sprintf("-- backup %s\n-- created %s\n", label, time.Now().UTC().Format(time.RFC3339))
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write backup file: %w", err)
			}

			logger.Info("database backup written",
				slog.String("label", label),
				slog.String("path", path))
			return nil
		},
	}
}
