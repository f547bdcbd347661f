// Package cmd provides the CLI commands for codecat.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/codecat-dev/codecat/internal/config"
	cerr "github.com/codecat-dev/codecat/internal/errors"
	"github.com/codecat-dev/codecat/internal/logging"
	"github.com/codecat-dev/codecat/internal/output"
	"github.com/codecat-dev/codecat/internal/scanner"
	"github.com/codecat-dev/codecat/internal/watcher"
	"github.com/codecat-dev/codecat/pkg/version"
)

// NewRootCmd creates the root command for the codecat CLI.
func NewRootCmd() *cobra.Command {
	var (
		outputPath string
		configPath string
		watchMode  bool
		debugMode  bool
	)

	cmd := &cobra.Command{
		Use:   "codecat <directory>",
		Short: "Concatenate a directory tree into one text file",
		Long: `codecat walks a directory tree and concatenates every readable text
file into a single artifact, honoring nested .gitignore rules and
skipping binary files.`,
		Version:      version.Short(),
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], outputPath, configPath, watchMode, debugMode)
		},
	}

	cmd.SetVersionTemplate("codecat version {{.Version}}\n")

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default \"combined.txt\")")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default <directory>/.codecat.yaml)")
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Rebuild the output whenever the tree changes")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// run wires config, logging, scanner, and output together and performs
// the combine, optionally staying resident in watch mode.
func run(ctx context.Context, root, outputFlag, configFlag string, watchMode, debugMode bool) error {
	// Preconditions first: a bad root or output target aborts before any
	// traversal work starts. Everything later is per-entry and recoverable.
	info, err := os.Stat(root)
	if err != nil {
		return cerr.New(cerr.ErrCodeRootMissing, fmt.Sprintf("invalid directory: %s", root), err)
	}
	if !info.IsDir() {
		return cerr.ValidationError(cerr.ErrCodeRootNotDir, fmt.Sprintf("not a directory: %s", root))
	}

	cfgPath := configFlag
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.FileName)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeConfigInvalid, err)
	}

	logCfg := logging.Config{
		Level:         cfg.Log.Level,
		FilePath:      cfg.Log.File,
		WriteToStderr: true,
	}
	if debugMode {
		logCfg.Level = "debug"
	}
	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeConfigInvalid, err)
	}
	defer cleanup()
	slog.SetDefault(logger)

	outPath := cfg.Output.Path
	if outputFlag != "" {
		outPath = outputFlag
	}
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeOutputCreate, err)
	}

	sc, err := scanner.New(scanner.Options{
		Root:           root,
		IgnoreFile:     cfg.Scan.IgnoreFile,
		OutputPath:     absOut,
		SkipPaths:      []string{output.LockPath(absOut)},
		MaxFileSize:    cfg.Scan.MaxFileSize,
		FollowSymlinks: cfg.Scan.FollowSymlinks,
	})
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeConfigInvalid, err)
	}

	lock := output.NewLock(absOut)

	if err := combine(ctx, sc, lock, root, absOut, outPath); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeConfigInvalid, err)
	}
	return watchLoop(ctx, sc, lock, cfg.Scan.IgnoreFile, root, absOut, outPath, debounce)
}

// combine regenerates the artifact once, under the output lock.
func combine(ctx context.Context, sc *scanner.Scanner, lock *output.Lock, root, absOut, displayOut string) error {
	if err := lock.Acquire(); err != nil {
		return cerr.Wrap(cerr.ErrCodeOutputLocked, err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			slog.Warn("failed to release output lock", slog.String("error", err.Error()))
		}
	}()

	out, err := os.Create(absOut)
	if err != nil {
		return cerr.New(cerr.ErrCodeOutputCreate,
			fmt.Sprintf("failed to create output file %s", displayOut), err)
	}
	defer func() { _ = out.Close() }()

	w := output.NewWriter(out)
	progress := newProgress(os.Stderr)

	err = sc.Walk(ctx, func(fi scanner.FileInfo) error {
		f, err := os.Open(fi.AbsPath)
		if err != nil {
			// Per-entry failures never abort the walk.
			slog.Warn("failed to open file, skipping",
				slog.String("path", fi.Path),
				slog.String("error", err.Error()))
			return nil
		}
		defer func() { _ = f.Close() }()

		if err := w.WriteFile(filepath.Join(root, filepath.FromSlash(fi.Path)), f); err != nil {
			slog.Warn("failed to copy file contents",
				slog.String("path", fi.Path),
				slog.String("error", err.Error()))
		}
		progress.update(w.Files())
		return nil
	})
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return cerr.Wrap(cerr.ErrCodeOutputCreate, err)
	}
	progress.clear()

	slog.Info("combine complete",
		slog.Int("files", w.Files()),
		slog.Int64("bytes", w.Bytes()))
	fmt.Printf("Files have been combined into %s\n", displayOut)
	return nil
}

// watchLoop rebuilds the artifact whenever the watcher reports a
// change, until the context is cancelled.
func watchLoop(ctx context.Context, sc *scanner.Scanner, lock *output.Lock, ignoreFile, root, absOut, displayOut string, debounce time.Duration) error {
	w, err := watcher.New(debounce, ignoreFile, absOut, output.LockPath(absOut))
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeWatchFailed, err)
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, root); err != nil {
		return cerr.Wrap(cerr.ErrCodeWatchFailed, err)
	}
	slog.Info("watching for changes", slog.String("root", root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors():
			slog.Warn("watcher error", slog.String("error", err.Error()))
		case ch := <-w.Changes():
			if ch.IgnoreRules {
				sc.InvalidateRuleCache()
			}
			if err := combine(ctx, sc, lock, root, absOut, displayOut); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Error("rebuild failed", slog.String("error", err.Error()))
			}
		}
	}
}
