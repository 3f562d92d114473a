// Copyright 2025 Shadow Atlas Contributors

package provenance

import (
	"context"
	"testing"
	"time"

	"github.com/shadowatlas/registry/internal/clock"
)

func TestQuery_FiltersByStateAndTier(t *testing.T) {
	dir := t.TempDir()
	fixed := clock.Fixed{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	s := New(Config{BaseDir: dir, Clock: fixed})

	recA := sampleRecord("37063", fixed.At)
	recA.State = "NC"
	recA.GranularityTier = 1

	recB := sampleRecord("06037", fixed.At)
	recB.State = "CA"
	recB.GranularityTier = 2

	ctx := context.Background()
	if err := s.AppendDiscovery(ctx, "agent-1", recA); err != nil {
		t.Fatalf("append A failed: %v", err)
	}
	if err := s.AppendDiscovery(ctx, "agent-1", recB); err != nil {
		t.Fatalf("append B failed: %v", err)
	}

	results, err := s.Query(Filter{State: "NC"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("result count mismatch: got %d, want 1", len(results))
	}
	if results[0].FIPS != "37063" {
		t.Errorf("fips mismatch: got %s, want 37063", results[0].FIPS)
	}
}

func TestQuery_SkipsMalformedLinesSilently(t *testing.T) {
	dir := t.TempDir()
	fixed := clock.Fixed{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	s := New(Config{BaseDir: dir, Clock: fixed})

	good := sampleRecord("37063", fixed.At)
	if err := s.AppendDiscovery(context.Background(), "agent-1", good); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	path := discoveryShardPath(dir, fixed.At, "37063")
	lines, err := readAllLines(path)
	if err != nil {
		t.Fatalf("readAllLines failed: %v", err)
	}
	lines = append(lines, []byte("{not json"))
	if err := writeAllLinesGzip(path, lines); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	results, err := s.Query(Filter{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("result count mismatch: got %d, want 1 (malformed line should be dropped)", len(results))
	}
}

func TestQuery_MinConfidenceFilter(t *testing.T) {
	dir := t.TempDir()
	fixed := clock.Fixed{At: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}
	s := New(Config{BaseDir: dir, Clock: fixed})

	low := sampleRecord("37063", fixed.At)
	low.Confidence = 20
	high := sampleRecord("37063", fixed.At)
	high.Confidence = 90

	ctx := context.Background()
	if err := s.AppendDiscovery(ctx, "agent-1", low); err != nil {
		t.Fatalf("append low failed: %v", err)
	}
	if err := s.AppendDiscovery(ctx, "agent-1", high); err != nil {
		t.Fatalf("append high failed: %v", err)
	}

	min := 50
	results, err := s.Query(Filter{MinConfidence: &min})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("result count mismatch: got %d, want 1", len(results))
	}
	if results[0].Confidence != 90 {
		t.Errorf("confidence mismatch: got %d, want 90", results[0].Confidence)
	}
}
