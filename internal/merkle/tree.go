// Copyright 2025 Shadow Atlas Contributors
//
// Merkle Commitment Engine (spec §4.F). A Tree commits one district's
// address set: leaves are hashed through the §4.F recipe, padded to
// 2^depth with a single cached padding hash, and folded level by level
// through the hash oracle. A dense vector of levels is retained so proofs
// are O(depth) without reconstruction.

package merkle

import (
	"context"
	"fmt"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/hashoracle"
)

// Proof is a membership proof: the leaf, depth siblings from level 0 up,
// and depth path bits (0 = target is the left child at that level).
type Proof struct {
	Root        hashoracle.Field
	Leaf        hashoracle.Field
	Siblings    []hashoracle.Field
	PathIndices []int
	Depth       int
}

// Tree is one district's committed address set.
type Tree struct {
	depth         int
	capacity      int
	addressCount  int
	levels        [][]hashoracle.Field
	addressIndex  map[string]int
	oracle        *hashoracle.Oracle
}

// BuildTree constructs a fixed-depth Merkle tree over inputs. Ordering of
// leaves is inputs' order; duplicate ids fail the build with up to five
// offending identifiers named (spec §4.F).
func BuildTree(ctx context.Context, cfg boundary.TreeConfig, inputs []boundary.MerkleLeafInput, oracle *hashoracle.Oracle) (*Tree, error) {
	depth := boundary.DepthFor(cfg)
	if !boundary.ValidDepth(depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDepth, depth)
	}

	if dups := findDuplicates(inputs); len(dups) > 0 {
		return nil, ErrDuplicateLeaf{Duplicates: dups}
	}

	leaves := make([]hashoracle.Field, len(inputs))
	addressIndex := make(map[string]int, len(inputs))
	for i, in := range inputs {
		leaf, err := LeafHash(oracle, in)
		if err != nil {
			return nil, err
		}
		leaves[i] = leaf
		addressIndex[in.ID] = i
	}

	levels, err := buildLevels(ctx, leaves, depth, cfg.BatchSize, oracle)
	if err != nil {
		return nil, err
	}

	return &Tree{
		depth:        depth,
		capacity:     1 << depth,
		addressCount: len(inputs),
		levels:       levels,
		addressIndex: addressIndex,
		oracle:       oracle,
	}, nil
}

// findDuplicates returns up to five ids that appear more than once in
// inputs, preserving first-seen order.
func findDuplicates(inputs []boundary.MerkleLeafInput) []string {
	seen := make(map[string]int, len(inputs))
	var dups []string
	for _, in := range inputs {
		seen[in.ID]++
		if seen[in.ID] == 2 {
			dups = append(dups, in.ID)
			if len(dups) == 5 {
				break
			}
		}
	}
	return dups
}

// Root returns the tree's root field element.
func (t *Tree) Root() hashoracle.Field {
	return t.levels[t.depth][0]
}

// Depth returns the configured tree depth.
func (t *Tree) Depth() int { return t.depth }

// Capacity returns 2^depth.
func (t *Tree) Capacity() int { return t.capacity }

// AddressCount returns the number of real (non-padding) leaves committed.
func (t *Tree) AddressCount() int { return t.addressCount }

// GenerateProof builds an O(depth) membership proof for id. Unknown
// addresses are rejected explicitly (spec §4.F).
func (t *Tree) GenerateProof(id string) (*Proof, error) {
	idx, ok := t.addressIndex[id]
	if !ok {
		return nil, ErrUnknownAddress{ID: id}
	}
	siblings, path := siblingsAndPath(t.levels, idx)
	return &Proof{
		Root:        t.Root(),
		Leaf:        t.levels[0][idx],
		Siblings:    siblings,
		PathIndices: path,
		Depth:       t.depth,
	}, nil
}

// VerifyProof recomputes the path from leaf to root and compares against
// the stored root. Used only for self-test; the real verifier is the
// downstream SNARK circuit (spec §4.F).
func VerifyProof(oracle *hashoracle.Oracle, proof *Proof) bool {
	current := proof.Leaf
	for level := 0; level < proof.Depth; level++ {
		sibling := proof.Siblings[level]
		if proof.PathIndices[level] == 0 {
			current = oracle.Hash2(current, sibling)
		} else {
			current = oracle.Hash2(sibling, current)
		}
	}
	return current.Equal(&proof.Root)
}
