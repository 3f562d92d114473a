// Copyright 2025 Shadow Atlas Contributors

package provenance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/clock"
	"github.com/shadowatlas/registry/internal/metrics"
)

// Store is the append-only provenance log: compressed shard store plus
// optional staging directory.
type Store struct {
	base        string
	lockCfg     LockConfig
	clock       clock.Clock
	stagingMode bool
	logger      *log.Logger
	metrics     *metrics.Registry
}

// Config configures a Store.
type Config struct {
	BaseDir     string
	LockConfig  LockConfig
	Clock       clock.Clock
	StagingMode bool
	Logger      *log.Logger
	Metrics     *metrics.Registry
}

// New builds a Store rooted at cfg.BaseDir.
func New(cfg Config) *Store {
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(log.Writer(), "[provenance] ", log.LstdFlags)
	}
	lc := cfg.LockConfig
	if lc.Retries == 0 && lc.RetryDelay == 0 && lc.Budget == 0 {
		lc = DefaultLockConfig()
	}
	return &Store{base: cfg.BaseDir, lockCfg: lc, clock: cfg.Clock, stagingMode: cfg.StagingMode, logger: cfg.Logger, metrics: cfg.Metrics}
}

// AppendDiscovery appends one provenance record, validating it first. In
// staging mode the record is written to a unique uncompressed file; in
// compressed mode (default) it goes straight into the locked, gzipped
// shard.
func (s *Store) AppendDiscovery(ctx context.Context, agentID string, r boundary.ProvenanceRecord) error {
	if err := ValidateEntry(r); err != nil {
		return err
	}
	line, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("provenance: marshal entry: %w", err)
	}
	if s.stagingMode {
		return s.appendStaging(agentID, line)
	}
	month := s.clock.Now()
	path := discoveryShardPath(s.base, month, r.FIPS)
	return s.appendCompressed(ctx, path, line)
}

// AppendTessellation appends a tessellation proof record to its shard,
// following the same lock/compress rules as discovery records.
func (s *Store) AppendTessellation(ctx context.Context, fips string, rec boundary.TessellationProofRecord) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("provenance: marshal tessellation record: %w", err)
	}
	month := s.clock.Now()
	if !rec.ValidatedAt.IsZero() {
		month = rec.ValidatedAt
	}
	path := tessellationShardPath(s.base, month, fips)
	return s.appendCompressed(ctx, path, line)
}

// appendCompressed performs the lock/read/gunzip/append/gzip/write/unlock
// cycle described in §4.E. The file handle is always closed before the
// lock file is unlinked (guard.release does this), so a crash leaks at
// worst a stale lock file, never a corrupted gzip stream.
func (s *Store) appendCompressed(ctx context.Context, path string, line []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("provenance: mkdir %s: %w", filepath.Dir(path), err)
	}

	lockStart := s.clock.Now()
	g, err := acquireLock(ctx, path, s.lockCfg)
	if s.metrics != nil {
		s.metrics.ObserveLockWait(s.clock.Now().Sub(lockStart))
	}
	if err != nil {
		return fmt.Errorf("provenance: %w", err)
	}
	defer func() {
		if relErr := g.release(); relErr != nil {
			s.logger.Printf("failed to release lock on %s: %v", path, relErr)
		}
	}()

	existing, err := readAllLines(path)
	if err != nil {
		return fmt.Errorf("provenance: read existing shard %s: %w", path, err)
	}
	existing = append(existing, line)

	return writeAllLinesGzip(path, existing)
}

// readAllLines reads and gunzips path, if it exists, returning its lines.
// A missing file is treated as an empty shard, not an error.
func readAllLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gunzip: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("read gunzipped content: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return bytes.Split(bytes.TrimRight(raw, "\n"), []byte("\n")), nil
}

// writeAllLinesGzip gzips the full line set and writes it atomically via a
// temp-file-then-rename, so a crash mid-write never leaves a truncated
// gzip stream in the target path.
func writeAllLinesGzip(path string, lines [][]byte) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(f)
	for _, line := range lines {
		if _, err := zw.Write(line); err != nil {
			zw.Close()
			f.Close()
			return err
		}
		if _, err := zw.Write([]byte("\n")); err != nil {
			zw.Close()
			f.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
