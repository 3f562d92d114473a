// Copyright 2025 Shadow Atlas Contributors
//
// Shared dense-level tree construction used by both the per-district Tree
// (leaf inputs hashed via the §4.F recipe) and the cross-district
// AggregateTree (leaves are already-computed district roots). Both retain a
// full vector of levels so proof generation is O(depth) without
// reconstruction (spec §4.F "Tree build").

package merkle

import (
	"context"
	"fmt"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/hashoracle"
)

const defaultBatchSize = 64

// buildLevels pads leaves to 2^depth with padding, then folds level 0 up to
// level depth (the root), batching each level's pairwise hashing through the
// oracle. levels[0] is the padded leaf layer; levels[depth] has exactly one
// element, the root.
func buildLevels(ctx context.Context, leaves []hashoracle.Field, depth, batchSize int, oracle *hashoracle.Oracle) ([][]hashoracle.Field, error) {
	if !boundary.ValidDepth(depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDepth, depth)
	}
	capacity := 1 << depth
	if len(leaves) > capacity {
		return nil, ErrCapacityExceeded{Depth: depth, Capacity: capacity, Count: len(leaves)}
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	padding := oracle.Padding()
	level0 := make([]hashoracle.Field, capacity)
	copy(level0, leaves)
	for i := len(leaves); i < capacity; i++ {
		level0[i] = padding
	}

	levels := make([][]hashoracle.Field, depth+1)
	levels[0] = level0

	current := level0
	for level := 0; level < depth; level++ {
		left := make([]hashoracle.Field, len(current)/2)
		right := make([]hashoracle.Field, len(current)/2)
		for i := 0; i < len(current); i += 2 {
			left[i/2] = current[i]
			right[i/2] = current[i+1]
		}
		next, err := oracle.Hash2Batch(ctx, left, right, batchSize)
		if err != nil {
			return nil, fmt.Errorf("merkle: hashing level %d: %w", level, err)
		}
		levels[level+1] = next
		current = next
	}
	return levels, nil
}

// siblingsAndPath walks levels from leaf index up to the root, collecting
// the sibling at each level and the path bit (0 = target is the left child).
func siblingsAndPath(levels [][]hashoracle.Field, index int) ([]hashoracle.Field, []int) {
	depth := len(levels) - 1
	siblings := make([]hashoracle.Field, depth)
	path := make([]int, depth)

	idx := index
	for level := 0; level < depth; level++ {
		isLeft := idx%2 == 0
		var siblingIdx int
		if isLeft {
			siblingIdx = idx + 1
			path[level] = 0
		} else {
			siblingIdx = idx - 1
			path[level] = 1
		}
		siblings[level] = levels[level][siblingIdx]
		idx /= 2
	}
	return siblings, path
}
