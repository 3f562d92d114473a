// Copyright 2025 Shadow Atlas Contributors
//
// Unit tests for the compressed and staging append paths.

package provenance

import (
	"context"
	"testing"
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/clock"
)

func sampleRecord(fips string, ts time.Time) boundary.ProvenanceRecord {
	return boundary.ProvenanceRecord{
		FIPS:            fips,
		GranularityTier: 1,
		Confidence:      80,
		AuthorityLevel:  3,
		Why:             []string{"primary source probed"},
		Tried:           []int{0},
		Timestamp:       ts.Format(time.RFC3339),
		AgentID:         "agent-1",
	}
}

// ============================================================================
// Compressed append/read round trip
// ============================================================================

func TestAppendDiscovery_CompressedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fixed := clock.Fixed{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	s := New(Config{BaseDir: dir, Clock: fixed})

	rec := sampleRecord("37063", fixed.At)
	if err := s.AppendDiscovery(context.Background(), "agent-1", rec); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	path := discoveryShardPath(dir, fixed.At, rec.FIPS)
	lines, err := readAllLines(path)
	if err != nil {
		t.Fatalf("readAllLines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("line count mismatch: got %d, want 1", len(lines))
	}
}

func TestAppendDiscovery_TwoAppendsSameShard(t *testing.T) {
	dir := t.TempDir()
	fixed := clock.Fixed{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	s := New(Config{BaseDir: dir, Clock: fixed})

	for i := 0; i < 2; i++ {
		rec := sampleRecord("37063", fixed.At)
		if err := s.AppendDiscovery(context.Background(), "agent-1", rec); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	path := discoveryShardPath(dir, fixed.At, "37063")
	lines, err := readAllLines(path)
	if err != nil {
		t.Fatalf("readAllLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("line count mismatch: got %d, want 2", len(lines))
	}
}

func TestAppendDiscovery_InvalidEntryRejected(t *testing.T) {
	dir := t.TempDir()
	s := New(Config{BaseDir: dir, Clock: clock.Fixed{At: time.Now()}})

	rec := sampleRecord("37063", time.Now())
	rec.Confidence = 150 // out of [0,100]

	err := s.AppendDiscovery(context.Background(), "agent-1", rec)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if _, ok := err.(ErrInvalidEntry); !ok {
		t.Errorf("expected ErrInvalidEntry, got %T: %v", err, err)
	}
}

// ============================================================================
// Staging mode
// ============================================================================

func TestAppendDiscovery_StagingModeWritesUncompressed(t *testing.T) {
	dir := t.TempDir()
	fixed := clock.Fixed{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	s := New(Config{BaseDir: dir, Clock: fixed, StagingMode: true})

	rec := sampleRecord("37063", fixed.At)
	if err := s.AppendDiscovery(context.Background(), "agent-7", rec); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	recs := readStagingFiltered(stagingDir(dir), Filter{})
	if len(recs) != 1 {
		t.Fatalf("staging record count mismatch: got %d, want 1", len(recs))
	}
	if recs[0].AgentID != "agent-7" {
		t.Errorf("agent id mismatch: got %s, want agent-7", recs[0].AgentID)
	}
}

func TestMergeStaging_DrainsFullyValidFiles(t *testing.T) {
	dir := t.TempDir()
	fixed := clock.Fixed{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	stage := New(Config{BaseDir: dir, Clock: fixed, StagingMode: true})
	compressed := New(Config{BaseDir: dir, Clock: fixed})

	rec := sampleRecord("37063", fixed.At)
	if err := stage.AppendDiscovery(context.Background(), "agent-9", rec); err != nil {
		t.Fatalf("staging append failed: %v", err)
	}

	result, err := compressed.MergeStaging(context.Background())
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if result.FilesDrained != 1 || result.FilesPartial != 0 {
		t.Errorf("merge result mismatch: %+v", result)
	}
	if result.EntriesMerged != 1 {
		t.Errorf("entries merged mismatch: got %d, want 1", result.EntriesMerged)
	}

	path := discoveryShardPath(dir, fixed.At, "37063")
	lines, err := readAllLines(path)
	if err != nil {
		t.Fatalf("readAllLines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Errorf("compressed store line count mismatch: got %d, want 1", len(lines))
	}
}
