package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/codecat-dev/codecat/internal/ignore"
)

// ruleCacheSize bounds the number of parsed ignore files kept between
// walks. Watch mode re-walks the tree on every rebuild; without a cap a
// long-running process would hold every ignore file it ever saw.
const ruleCacheSize = 1000

// Scanner performs a single-threaded depth-first walk of a directory
// tree, pruning ignored entries and skipping binary files.
type Scanner struct {
	opts      Options
	ruleCache *lru.Cache[string, []ignore.Rule]
}

// New creates a Scanner for the given options.
func New(opts Options) (*Scanner, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("scanner: root directory is required")
	}
	if opts.IgnoreFile == "" {
		opts.IgnoreFile = ignore.DefaultIgnoreFile
	}
	cache, err := lru.New[string, []ignore.Rule](ruleCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule cache: %w", err)
	}
	return &Scanner{opts: opts, ruleCache: cache}, nil
}

// Walk traverses the tree rooted at Options.Root in sorted entry order,
// calling visit for every file that is not ignored, not binary, and not
// otherwise excluded. Per-entry failures are logged and skipped; only a
// bad root or a cancelled context aborts the walk.
func (s *Scanner) Walk(ctx context.Context, visit VisitFunc) error {
	absRoot, err := filepath.Abs(s.opts.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return fmt.Errorf("failed to stat root directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", absRoot)
	}

	seed := ignore.ForRoot(absRoot, s.opts.IgnoreFile)
	return s.walkDir(ctx, absRoot, "", seed, visit)
}

// walkDir visits the entries of one directory. rel is the directory's
// slash-separated path relative to the scan root ("" for the root
// itself). Each recursive call receives its own extended rule set; the
// parent's set is never modified, so siblings cannot observe each
// other's local rules.
func (s *Scanner) walkDir(ctx context.Context, dir, rel string, rules ignore.RuleSet, visit VisitFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("failed to read directory, skipping",
			slog.String("dir", dir),
			slog.String("error", err.Error()))
		return nil
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		if name == s.opts.IgnoreFile {
			continue
		}
		relPath := joinRel(rel, name)
		absPath := filepath.Join(dir, name)
		if s.skipped(absPath) {
			continue
		}

		isDir := entry.IsDir()
		var size int64
		if entry.Type()&fs.ModeSymlink != 0 {
			if !s.opts.FollowSymlinks {
				continue
			}
			target, err := os.Stat(absPath)
			if err != nil {
				slog.Warn("failed to resolve symlink, skipping",
					slog.String("path", relPath),
					slog.String("error", err.Error()))
				continue
			}
			isDir = target.IsDir()
			size = target.Size()
		} else if !isDir {
			fi, err := entry.Info()
			if err != nil {
				slog.Warn("failed to stat file, skipping",
					slog.String("path", relPath),
					slog.String("error", err.Error()))
				continue
			}
			size = fi.Size()
		}

		// Last-match-wins verdict over the composed rule set. An
		// ignored directory prunes the whole subtree: its children are
		// never visited, even if a deeper rule would re-include them.
		if rules.Ignored(relPath, isDir) {
			continue
		}

		if isDir {
			child := s.childRuleSet(rules, absPath, relPath)
			if err := s.walkDir(ctx, absPath, relPath, child, visit); err != nil {
				return err
			}
			continue
		}

		if s.opts.MaxFileSize > 0 && size > s.opts.MaxFileSize {
			slog.Debug("skipping oversized file",
				slog.String("path", relPath),
				slog.Int64("size", size))
			continue
		}
		if IsBinary(absPath) {
			slog.Debug("skipping binary file", slog.String("path", relPath))
			continue
		}

		if err := visit(FileInfo{Path: relPath, AbsPath: absPath, Size: size}); err != nil {
			return err
		}
	}
	return nil
}

// skipped reports whether absPath is the output artifact or one of the
// configured skip paths.
func (s *Scanner) skipped(absPath string) bool {
	if s.opts.OutputPath != "" && absPath == s.opts.OutputPath {
		return true
	}
	for _, p := range s.opts.SkipPaths {
		if absPath == p {
			return true
		}
	}
	return false
}

// childRuleSet derives the rule set governing childDir's entries by
// appending its local ignore file, if any, to the inherited set. Parsed
// files are cached per directory so watch-mode rebuilds do not reparse
// unchanged ignore files.
func (s *Scanner) childRuleSet(parent ignore.RuleSet, childDir, childRel string) ignore.RuleSet {
	if local, ok := s.ruleCache.Get(childDir); ok {
		return parent.Extend(local)
	}

	path := filepath.Join(childDir, s.opts.IgnoreFile)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return parent
	}
	local, err := ignore.ParseFile(path, childRel)
	if err != nil {
		// Unreadable ignore file means no additional rules.
		slog.Warn("failed to read ignore file, skipping",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return parent
	}

	s.ruleCache.Add(childDir, local)
	return parent.Extend(local)
}

// InvalidateRuleCache drops all cached ignore files. Watch mode calls
// this when an ignore file changes so the next walk reparses it.
func (s *Scanner) InvalidateRuleCache() {
	s.ruleCache.Purge()
}

// joinRel joins slash-separated relative path elements.
func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
