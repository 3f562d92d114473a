// Copyright 2025 Shadow Atlas Contributors

package merkle

import (
	"context"
	"testing"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/hashoracle"
)

func TestBuildAggregateTree_ComposesDistrictRoots(t *testing.T) {
	oracle := hashoracle.Singleton()
	ctx := context.Background()

	var children []NamedRoot
	for i, fips := range []string{"37063", "37183", "06037"} {
		tree, err := BuildTree(ctx, boundary.TreeConfig{Depth: 18}, sampleInputs(3), oracle)
		if err != nil {
			t.Fatalf("district %d build failed: %v", i, err)
		}
		children = append(children, NamedRoot{ID: fips, Root: tree.Root()})
	}

	agg, err := BuildAggregateTree(ctx, boundary.TreeConfig{Depth: 18}, children, oracle)
	if err != nil {
		t.Fatalf("aggregate build failed: %v", err)
	}
	if agg.ChildCount() != 3 {
		t.Errorf("child count mismatch: got %d, want 3", agg.ChildCount())
	}

	proof, err := agg.GenerateProof("37183")
	if err != nil {
		t.Fatalf("proof generation failed: %v", err)
	}
	if !VerifyProof(oracle, proof) {
		t.Error("expected aggregate proof to verify")
	}
}

func TestBuildAggregateTree_RejectsDuplicateChildIDs(t *testing.T) {
	oracle := hashoracle.Singleton()
	ctx := context.Background()
	root := oracle.HashBytes([]byte("district-root"))

	_, err := BuildAggregateTree(ctx, boundary.TreeConfig{Depth: 18}, []NamedRoot{
		{ID: "37063", Root: root},
		{ID: "37063", Root: root},
	}, oracle)
	if err == nil {
		t.Fatal("expected duplicate child id error, got nil")
	}
}
