// Copyright 2025 Shadow Atlas Contributors

package provenance

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shadowatlas/registry/internal/boundary"
)

// appendStaging writes a single unique file {agentId}-{unix-ms}.ndjson into
// the sibling discovery-staging/ directory; no locking (spec §4.E).
func (s *Store) appendStaging(agentID string, line []byte) error {
	dir := stagingDir(s.base)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("provenance: mkdir staging dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%d.ndjson", agentID, s.clock.Now().UnixMilli()))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("provenance: open staging file %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("provenance: write staging file %s: %w", path, err)
	}
	return nil
}

// MergeResult summarizes one staging-to-compressed drain.
type MergeResult struct {
	FilesDrained    int
	FilesPartial    int
	EntriesMerged   int
	EntriesFailed   int
}

// MergeStaging drains every file in the staging directory into the
// compressed store, one AppendDiscovery call per line, and unlinks each
// staging file only once every line in it has been merged successfully. A
// file with any failed line is left in place and counted as partial — the
// merge worker never deletes a staging file it did not fully drain (spec
// §4.E).
func (s *Store) MergeStaging(ctx context.Context) (MergeResult, error) {
	dir := stagingDir(s.base)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return MergeResult{}, nil
	}
	if err != nil {
		return MergeResult{}, fmt.Errorf("provenance: list staging dir %s: %w", dir, err)
	}

	var result MergeResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ndjson") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		agentID := agentIDFromStagingName(entry.Name())

		fullyDrained, merged, failed, err := s.drainOne(ctx, path, agentID)
		result.EntriesMerged += merged
		result.EntriesFailed += failed
		if err != nil {
			s.logger.Printf("merge: error draining %s: %v", path, err)
		}
		if fullyDrained {
			result.FilesDrained++
			if rmErr := os.Remove(path); rmErr != nil {
				s.logger.Printf("merge: failed to unlink fully-drained staging file %s: %v", path, rmErr)
			}
		} else {
			result.FilesPartial++
		}
	}
	return result, nil
}

func agentIDFromStagingName(name string) string {
	name = strings.TrimSuffix(name, ".ndjson")
	if idx := strings.LastIndex(name, "-"); idx > 0 {
		return name[:idx]
	}
	return name
}

// drainOne replays every line of a staging file through AppendDiscovery.
// It returns whether the file was fully drained (every line merged).
func (s *Store) drainOne(ctx context.Context, path, agentID string) (fullyDrained bool, merged, failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return false, 0, 0, err
	}
	defer f.Close()

	fullyDrained = true
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec boundary.ProvenanceRecord
		if jsonErr := json.Unmarshal(line, &rec); jsonErr != nil {
			failed++
			fullyDrained = false
			continue
		}
		if appendErr := s.AppendDiscovery(ctx, agentID, rec); appendErr != nil {
			failed++
			fullyDrained = false
			continue
		}
		merged++
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return false, merged, failed, scanErr
	}
	return fullyDrained, merged, failed, nil
}
