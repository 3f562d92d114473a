// Copyright 2025 Shadow Atlas Contributors
//
// Snapshot publication: wires the Merkle Commitment Engine's serializer to
// the blob store, the way the corpus's pkg/proof/artifact_service.go glues
// a computed artifact to its persistence layer.

package snapshot

import (
	"context"
	"fmt"

	"github.com/shadowatlas/registry/internal/blobstore"
	"github.com/shadowatlas/registry/internal/clock"
	"github.com/shadowatlas/registry/internal/merkle"
)

// Service publishes Merkle snapshots to a blob store.
type Service struct {
	clk   clock.Clock
	blobs blobstore.Store
}

// NewService builds a Service bound to a blob store and a clock (so
// generatedAt metadata is deterministic under test).
func NewService(blobs blobstore.Store, c clock.Clock) *Service {
	if c == nil {
		c = clock.System{}
	}
	return &Service{clk: c, blobs: blobs}
}

// PublishTree serializes a district's committed tree and stores it,
// returning the blob store's content id.
func (s *Service) PublishTree(ctx context.Context, t *merkle.Tree, verifierContract, hintedFilename string) (string, error) {
	snap := merkle.BuildSnapshot(t, verifierContract, s.clk.Now())
	data, err := snap.Marshal()
	if err != nil {
		return "", fmt.Errorf("snapshot: marshal tree snapshot: %w", err)
	}
	id, err := s.blobs.Put(ctx, data, hintedFilename)
	if err != nil {
		return "", blobstore.ErrPutFailed{Size: len(data), Err: err}
	}
	return id, nil
}

// PublishAggregate serializes an aggregate (region/country/continent) tree
// and stores it the same way.
func (s *Service) PublishAggregate(ctx context.Context, a *merkle.AggregateTree, verifierContract, hintedFilename string) (string, error) {
	snap := merkle.BuildAggregateSnapshot(a, verifierContract, s.clk.Now())
	data, err := snap.Marshal()
	if err != nil {
		return "", fmt.Errorf("snapshot: marshal aggregate snapshot: %w", err)
	}
	id, err := s.blobs.Put(ctx, data, hintedFilename)
	if err != nil {
		return "", blobstore.ErrPutFailed{Size: len(data), Err: err}
	}
	return id, nil
}

// Fetch retrieves and decodes a previously published snapshot by content id.
func (s *Service) Fetch(ctx context.Context, contentID string) (merkle.Snapshot, error) {
	data, err := s.blobs.Get(ctx, contentID)
	if err != nil {
		return merkle.Snapshot{}, err
	}
	return merkle.UnmarshalSnapshot(data)
}
