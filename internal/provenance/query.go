// Copyright 2025 Shadow Atlas Contributors

package provenance

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
)

// Filter is the predicate applied in memory after decompression (§4.E
// query). Zero-valued fields are not applied.
type Filter struct {
	StartDate      time.Time
	EndDate        time.Time
	Tier           *int
	State          string
	BlockerCode    string
	MinConfidence  *int
	FIPS           string
	AuthorityLevel *int
}

func (f Filter) matches(r boundary.ProvenanceRecord) bool {
	if f.Tier != nil && r.GranularityTier != *f.Tier {
		return false
	}
	if f.State != "" && r.State != f.State {
		return false
	}
	if f.BlockerCode != "" {
		if r.Blocked == nil || *r.Blocked != f.BlockerCode {
			return false
		}
	}
	if f.MinConfidence != nil && r.Confidence < *f.MinConfidence {
		return false
	}
	if f.FIPS != "" && r.FIPS != f.FIPS {
		return false
	}
	if f.AuthorityLevel != nil && r.AuthorityLevel != *f.AuthorityLevel {
		return false
	}
	if !f.StartDate.IsZero() || !f.EndDate.IsZero() {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			return false
		}
		if !f.StartDate.IsZero() && ts.Before(f.StartDate) {
			return false
		}
		if !f.EndDate.IsZero() && ts.After(f.EndDate) {
			return false
		}
	}
	return true
}

// Query scans every compressed shard whose month falls inside
// [filter.StartDate, filter.EndDate] plus all staging files, decompresses
// each, parses every line, skips malformed lines silently, and applies the
// filter in memory. Ordering is not guaranteed (spec §4.E).
func (s *Store) Query(filter Filter) ([]boundary.ProvenanceRecord, error) {
	start, end := filter.StartDate, filter.EndDate
	if start.IsZero() {
		start = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = s.clock.Now()
	}

	var out []boundary.ProvenanceRecord
	for _, month := range monthsInRange(start, end) {
		dir := filepath.Join(s.base, month.Format("2006-01"))
		shardFiles, err := filepath.Glob(filepath.Join(dir, "discovery-log-*.ndjson.gz"))
		if err != nil {
			return nil, err
		}
		for _, shard := range shardFiles {
			out = append(out, readShardFiltered(shard, filter)...)
		}
	}

	out = append(out, readStagingFiltered(stagingDir(s.base), filter)...)
	return out, nil
}

// readShardFiltered decompresses one shard and returns matching records,
// dropping malformed lines silently.
func readShardFiltered(path string, filter Filter) []boundary.ProvenanceRecord {
	lines, err := readAllLines(path)
	if err != nil {
		return nil
	}
	var out []boundary.ProvenanceRecord
	for _, line := range lines {
		var r boundary.ProvenanceRecord
		if err := json.Unmarshal(line, &r); err != nil {
			continue // malformed line: counted nowhere, dropped per spec §4.E
		}
		if filter.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func readStagingFiltered(dir string, filter Filter) []boundary.ProvenanceRecord {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []boundary.ProvenanceRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ndjson") {
			continue
		}
		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var r boundary.ProvenanceRecord
			if err := json.Unmarshal(line, &r); err != nil {
				continue
			}
			if filter.matches(r) {
				out = append(out, r)
			}
		}
		f.Close()
	}
	return out
}
