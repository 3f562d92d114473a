// Copyright 2025 Shadow Atlas Contributors

package provenance

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
)

// IsValidationCurrent recomputes the sha-256 of geometry and compares it
// against rec.GeometryHash: a cached tessellation validation only applies to
// the exact geometry bytes it was run against (spec §4.E).
func IsValidationCurrent(rec boundary.TessellationProofRecord, geometry []byte) bool {
	sum := sha256.Sum256(geometry)
	return hex.EncodeToString(sum[:]) == rec.GeometryHash
}

// QueryTessellation scans tessellation shards the same way Query scans
// discovery shards, returning every record for the given FIPS prefix whose
// month falls inside the filter's date range.
func (s *Store) QueryTessellation(_ context.Context, filter Filter) ([]boundary.TessellationProofRecord, error) {
	start, end := filter.StartDate, filter.EndDate
	if start.IsZero() {
		start = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = s.clock.Now()
	}

	var out []boundary.TessellationProofRecord
	for _, month := range monthsInRange(start, end) {
		dir := filepath.Join(s.base, month.Format("2006-01"))
		shardFiles, err := filepath.Glob(filepath.Join(dir, "tessellation-log-*.ndjson.gz"))
		if err != nil {
			return nil, err
		}
		for _, shard := range shardFiles {
			recs, err := readTessellationShard(shard, filter)
			if err != nil {
				continue
			}
			out = append(out, recs...)
		}
	}
	return out, nil
}

func readTessellationShard(path string, filter Filter) ([]boundary.TessellationProofRecord, error) {
	lines, err := readAllLines(path)
	if err != nil {
		return nil, err
	}
	var out []boundary.TessellationProofRecord
	for _, line := range lines {
		var r boundary.TessellationProofRecord
		if err := json.Unmarshal(line, &r); err != nil {
			continue
		}
		if !filter.StartDate.IsZero() && r.ValidatedAt.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && r.ValidatedAt.After(filter.EndDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
