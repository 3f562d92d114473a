// Copyright 2025 Shadow Atlas Contributors

package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/shadowatlas/registry/internal/blobstore"
	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/clock"
	"github.com/shadowatlas/registry/internal/hashoracle"
	"github.com/shadowatlas/registry/internal/merkle"
)

func TestPublishTree_FetchRoundTrip(t *testing.T) {
	oracle := hashoracle.Singleton()
	inputs := []boundary.MerkleLeafInput{
		{ID: "addr-1", BoundaryKind: boundary.KindVotingPrecinct, GeometryHash: "aa", AuthorityLevel: 3},
		{ID: "addr-2", BoundaryKind: boundary.KindVotingPrecinct, GeometryHash: "bb", AuthorityLevel: 3},
	}
	tree, err := merkle.BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, inputs, oracle)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	blobs := blobstore.NewMemoryStore()
	fixed := clock.Fixed{At: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewService(blobs, fixed)

	id, err := svc.PublishTree(context.Background(), tree, "ShadowAtlasVerifierV1", "district-37063.json")
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	got, err := svc.Fetch(context.Background(), id)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if got.Metadata.AddressCount != 2 {
		t.Errorf("address count mismatch: got %d, want 2", got.Metadata.AddressCount)
	}
	if !got.Metadata.GeneratedAt.Equal(fixed.At) {
		t.Errorf("generatedAt mismatch: got %v, want %v", got.Metadata.GeneratedAt, fixed.At)
	}
}
