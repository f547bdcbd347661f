package output

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock serializes artifact generation across processes. Watch-mode
// rebuilds and concurrent invocations pointed at the same artifact
// would otherwise interleave writes. Works on Unix, macOS, and Windows.
type Lock struct {
	fl     *flock.Flock
	locked bool
}

// NewLock creates a lock guarding the artifact at outputPath. The lock
// file lives next to the artifact as <outputPath>.lock so the artifact
// itself can be truncated and rewritten while the lock is held.
func NewLock(outputPath string) *Lock {
	return &Lock{fl: flock.New(LockPath(outputPath))}
}

// LockPath returns the lock file path for an artifact path.
func LockPath(outputPath string) string {
	return outputPath + ".lock"
}

// Acquire takes the exclusive lock, blocking until it is available.
func (l *Lock) Acquire() error {
	if err := l.fl.Lock(); err != nil {
		return fmt.Errorf("failed to acquire output lock: %w", err)
	}
	l.locked = true
	return nil
}

// Release drops the lock. Safe to call when the lock is not held.
func (l *Lock) Release() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("failed to release output lock: %w", err)
	}
	return nil
}
