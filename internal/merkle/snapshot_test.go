// Copyright 2025 Shadow Atlas Contributors

package merkle

import (
	"context"
	"testing"
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/hashoracle"
)

func TestBuildSnapshot_RoundTripsThroughJSON(t *testing.T) {
	oracle := hashoracle.Singleton()
	tree, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, sampleInputs(4), oracle)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	generatedAt := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	snap := BuildSnapshot(tree, "ShadowAtlasVerifierV1", generatedAt)

	if snap.Metadata.AddressCount != 4 {
		t.Errorf("address count mismatch: got %d, want 4", snap.Metadata.AddressCount)
	}
	if snap.Metadata.Capacity != 1<<18 {
		t.Errorf("capacity mismatch: got %d, want %d", snap.Metadata.Capacity, 1<<18)
	}
	if len(snap.Leaves) != snap.Metadata.Capacity {
		t.Errorf("leaf record count mismatch: got %d, want %d", len(snap.Leaves), snap.Metadata.Capacity)
	}

	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	decoded, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Root != snap.Root {
		t.Errorf("root mismatch after round trip: got %s, want %s", decoded.Root, snap.Root)
	}
	if decoded.Metadata.VerifierContract != "ShadowAtlasVerifierV1" {
		t.Errorf("verifier contract mismatch: got %s", decoded.Metadata.VerifierContract)
	}
}
