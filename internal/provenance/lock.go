// Copyright 2025 Shadow Atlas Contributors
//
// Advisory locking for the compressed shard store. Spec §4.E describes a
// `*.lock` file created with exclusive-create semantics, 50 retries at
// ~100ms with jitter, 5s overall budget. gofrs/flock is the corpus's own
// cross-platform advisory-lock library (present but unwired in the
// teacher); TryLock gives the same mutual-exclusion guarantee as
// O_CREAT|O_EXCL without hand-rolled platform-specific file juggling, so
// this package drives it with an explicit retry loop instead of its
// blocking Lock().

package provenance

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gofrs/flock"
)

// LockConfig bounds the retry loop (spec §6 defaults).
type LockConfig struct {
	Retries    int           // default 50
	RetryDelay time.Duration // default 100ms
	Budget     time.Duration // default 5s overall
}

// DefaultLockConfig matches the spec §6 configuration defaults.
func DefaultLockConfig() LockConfig {
	return LockConfig{Retries: 50, RetryDelay: 100 * time.Millisecond, Budget: 5 * time.Second}
}

// ErrLockTimeout is returned when the lock cannot be acquired within the
// configured retry budget (spec §7: transient I/O error, surfaces as
// blocked = "lock-timeout").
var ErrLockTimeout = fmt.Errorf("provenance: lock acquisition timed out")

// guard holds an acquired lock; Release must run on every exit path,
// including panics, and must close the file handle before unlinking the
// lock file so a crashed process leaks at worst a stale lock (spec §9
// "Scoped resources").
type guard struct {
	fl *flock.Flock
}

// acquireLock acquires the advisory lock on targetPath+".lock", retrying
// per cfg.
func acquireLock(ctx context.Context, targetPath string, cfg LockConfig) (*guard, error) {
	if cfg.Retries <= 0 {
		cfg.Retries = 50
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 100 * time.Millisecond
	}
	if cfg.Budget <= 0 {
		cfg.Budget = 5 * time.Second
	}

	deadline := time.Now().Add(cfg.Budget)
	fl := flock.New(targetPath + ".lock")

	for attempt := 0; attempt < cfg.Retries; attempt++ {
		locked, err := fl.TryLockContext(ctx, 0)
		if err != nil {
			return nil, fmt.Errorf("provenance: lock %s: %w", targetPath, err)
		}
		if locked {
			return &guard{fl: fl}, nil
		}
		if time.Now().After(deadline) {
			break
		}
		jitter := time.Duration(rand.Int63n(int64(cfg.RetryDelay)))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryDelay/2 + jitter/2):
		}
	}
	return nil, ErrLockTimeout
}

// release unlocks and removes the lock file. The underlying file handle is
// always closed (via Unlock) before the lock file is unlinked, so a crash
// between these two steps leaves only a stale lock file, never a
// corrupted target.
func (g *guard) release() error {
	path := g.fl.Path()
	if err := g.fl.Unlock(); err != nil {
		return fmt.Errorf("provenance: unlock %s: %w", path, err)
	}
	// Best effort: the handle is already closed by Unlock, so a crash here
	// leaks only a stale lock file, never a partially-written target.
	_ = os.Remove(path)
	return nil
}
