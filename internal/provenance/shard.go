// Copyright 2025 Shadow Atlas Contributors
//
// Provenance Log (spec §4.E). Sharded, gzip-compressed, crash-safe
// append-only audit trail with two ingestion modes and one query mode.

package provenance

import (
	"fmt"
	"path/filepath"
	"time"
)

// ShardCount is the number of shards per month (spec §4.E: "50 shards per
// month allow independent writers per state").
const ShardCount = 50

// shardKey is the first two characters of a FIPS code, the shard key for
// both the discovery and tessellation logs.
func shardKey(fips string) string {
	if len(fips) < 2 {
		return fmt.Sprintf("%02s", fips)
	}
	return fips[:2]
}

// discoveryShardPath returns {base}/{YYYY-MM}/discovery-log-{SS}.ndjson.gz.
func discoveryShardPath(base string, month time.Time, fips string) string {
	return filepath.Join(base, month.Format("2006-01"), fmt.Sprintf("discovery-log-%s.ndjson.gz", shardKey(fips)))
}

// tessellationShardPath returns {base}/{YYYY-MM}/tessellation-log-{SS}.ndjson.gz.
func tessellationShardPath(base string, month time.Time, fips string) string {
	return filepath.Join(base, month.Format("2006-01"), fmt.Sprintf("tessellation-log-%s.ndjson.gz", shardKey(fips)))
}

// stagingDir is the sibling directory for uncompressed staging writes.
func stagingDir(base string) string {
	return filepath.Join(filepath.Dir(base), "discovery-staging")
}

// monthsInRange returns every YYYY-MM bucket from start to end inclusive.
func monthsInRange(start, end time.Time) []time.Time {
	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	var months []time.Time
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}
