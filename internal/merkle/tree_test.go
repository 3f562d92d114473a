// Copyright 2025 Shadow Atlas Contributors
//
// Merkle Tree Tests

package merkle

import (
	"context"
	"fmt"
	"testing"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/hashoracle"
)

func sampleInputs(n int) []boundary.MerkleLeafInput {
	inputs := make([]boundary.MerkleLeafInput, n)
	for i := 0; i < n; i++ {
		inputs[i] = boundary.MerkleLeafInput{
			ID:             fmt.Sprintf("addr-%04d", i),
			BoundaryKind:   boundary.KindVotingPrecinct,
			GeometryHash:   fmt.Sprintf("%064x", i),
			AuthorityLevel: 3,
		}
	}
	return inputs
}

func TestBuildTree_SmallDistrict(t *testing.T) {
	oracle := hashoracle.Singleton()
	inputs := sampleInputs(5)

	tree, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, inputs, oracle)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if tree.AddressCount() != 5 {
		t.Errorf("address count mismatch: got %d, want 5", tree.AddressCount())
	}
	if tree.Capacity() != 1<<18 {
		t.Errorf("capacity mismatch: got %d, want %d", tree.Capacity(), 1<<18)
	}
}

func TestBuildTree_RejectsUnknownDepth(t *testing.T) {
	oracle := hashoracle.Singleton()
	_, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 19}, sampleInputs(1), oracle)
	if err == nil {
		t.Fatal("expected unknown depth error, got nil")
	}
}

func TestBuildTree_RejectsCapacityExceeded(t *testing.T) {
	oracle := hashoracle.Singleton()
	inputs := sampleInputs(5)
	_, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, append(inputs, sampleInputs(1<<18)...), oracle)
	if err == nil {
		t.Fatal("expected capacity exceeded error, got nil")
	}
	if _, ok := err.(ErrCapacityExceeded); !ok {
		t.Errorf("expected ErrCapacityExceeded, got %T: %v", err, err)
	}
}

func TestBuildTree_RejectsDuplicateLeaves(t *testing.T) {
	oracle := hashoracle.Singleton()
	inputs := sampleInputs(3)
	inputs = append(inputs, inputs[0], inputs[1])

	_, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, inputs, oracle)
	if err == nil {
		t.Fatal("expected duplicate leaf error, got nil")
	}
	dupErr, ok := err.(ErrDuplicateLeaf)
	if !ok {
		t.Fatalf("expected ErrDuplicateLeaf, got %T: %v", err, err)
	}
	if len(dupErr.Duplicates) != 2 {
		t.Errorf("duplicate count mismatch: got %d, want 2", len(dupErr.Duplicates))
	}
}

func TestGenerateProof_RoundTrip(t *testing.T) {
	oracle := hashoracle.Singleton()
	inputs := sampleInputs(10)

	tree, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, inputs, oracle)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	proof, err := tree.GenerateProof("addr-0003")
	if err != nil {
		t.Fatalf("proof generation failed: %v", err)
	}
	if proof.Depth != 18 {
		t.Errorf("proof depth mismatch: got %d, want 18", proof.Depth)
	}
	if len(proof.Siblings) != 18 || len(proof.PathIndices) != 18 {
		t.Errorf("proof vector length mismatch: siblings=%d path=%d", len(proof.Siblings), len(proof.PathIndices))
	}

	if !VerifyProof(oracle, proof) {
		t.Error("expected proof to verify against the tree root")
	}
}

func TestGenerateProof_UnknownAddress(t *testing.T) {
	oracle := hashoracle.Singleton()
	tree, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, sampleInputs(3), oracle)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	_, err = tree.GenerateProof("does-not-exist")
	if err == nil {
		t.Fatal("expected unknown address error, got nil")
	}
	if _, ok := err.(ErrUnknownAddress); !ok {
		t.Errorf("expected ErrUnknownAddress, got %T: %v", err, err)
	}
}

func TestVerifyProof_RejectsTamperedSibling(t *testing.T) {
	oracle := hashoracle.Singleton()
	tree, err := BuildTree(context.Background(), boundary.TreeConfig{Depth: 18}, sampleInputs(10), oracle)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	proof, err := tree.GenerateProof("addr-0000")
	if err != nil {
		t.Fatalf("proof generation failed: %v", err)
	}
	proof.Siblings[0] = oracle.HashBytes([]byte("tampered"))

	if VerifyProof(oracle, proof) {
		t.Error("expected tampered proof to fail verification")
	}
}

func TestDepthFor_DefaultsByCountry(t *testing.T) {
	got := boundary.DepthFor(boundary.TreeConfig{CountryCode: "USA"})
	if got != 22 {
		t.Errorf("USA default depth mismatch: got %d, want 22", got)
	}
	got = boundary.DepthFor(boundary.TreeConfig{CountryCode: "ZZZ"})
	if got != 20 {
		t.Errorf("unknown country default depth mismatch: got %d, want 20", got)
	}
}
