// Package scanner walks a directory tree depth-first, applying nested
// ignore rules and a binary-content probe, and hands surviving files to
// a visit callback in traversal order.
package scanner

// FileInfo describes a file that survived filtering.
type FileInfo struct {
	// Path is the slash-separated path relative to the scan root.
	Path string
	// AbsPath is the absolute filesystem path.
	AbsPath string
	// Size is the file size in bytes.
	Size int64
}

// Options configures a Scanner.
type Options struct {
	// Root is the directory to scan. Required.
	Root string

	// IgnoreFile is the per-directory ignore file name. Defaults to
	// ".gitignore". Ignore files themselves are never visited.
	IgnoreFile string

	// OutputPath is the absolute path of the artifact being produced.
	// It is excluded from traversal so the tool never ingests its own
	// output.
	OutputPath string

	// SkipPaths lists additional absolute paths excluded from traversal,
	// such as the output lock file.
	SkipPaths []string

	// MaxFileSize skips files larger than this many bytes. 0 disables
	// the guard.
	MaxFileSize int64

	// FollowSymlinks resolves symlinks instead of skipping them.
	FollowSymlinks bool
}

// VisitFunc receives each surviving file. Returning an error aborts the
// walk.
type VisitFunc func(info FileInfo) error
