// Copyright 2025 Shadow Atlas Contributors
//
// Global aggregation (spec §4.F "Global aggregation"): composes district
// roots into a country/region/continent tree with the same algorithm,
// producing a single top root. District roots are already field elements,
// so no leaf-hash recipe applies here — they go straight into the level
// builder as level-0 leaves.

package merkle

import (
	"context"
	"fmt"
	"sort"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/hashoracle"
)

// NamedRoot pairs a district (or region) identifier with its committed root.
type NamedRoot struct {
	ID   string
	Root hashoracle.Field
}

// AggregateTree composes a set of child roots into one top root.
type AggregateTree struct {
	depth    int
	capacity int
	count    int
	levels   [][]hashoracle.Field
	index    map[string]int
}

// BuildAggregateTree composes children's roots, in the given order, into a
// single aggregate tree of the configured depth.
func BuildAggregateTree(ctx context.Context, cfg boundary.TreeConfig, children []NamedRoot, oracle *hashoracle.Oracle) (*AggregateTree, error) {
	depth := boundary.DepthFor(cfg)
	if !boundary.ValidDepth(depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDepth, depth)
	}

	if dups := findDuplicateIDs(children); len(dups) > 0 {
		return nil, ErrDuplicateLeaf{Duplicates: dups}
	}

	leaves := make([]hashoracle.Field, len(children))
	index := make(map[string]int, len(children))
	for i, c := range children {
		leaves[i] = c.Root
		index[c.ID] = i
	}

	levels, err := buildLevels(ctx, leaves, depth, cfg.BatchSize, oracle)
	if err != nil {
		return nil, err
	}

	return &AggregateTree{
		depth:    depth,
		capacity: 1 << depth,
		count:    len(children),
		levels:   levels,
		index:    index,
	}, nil
}

func findDuplicateIDs(children []NamedRoot) []string {
	seen := make(map[string]int, len(children))
	var dups []string
	for _, c := range children {
		seen[c.ID]++
		if seen[c.ID] == 2 {
			dups = append(dups, c.ID)
			if len(dups) == 5 {
				break
			}
		}
	}
	return dups
}

// Root returns the aggregate tree's top root.
func (a *AggregateTree) Root() hashoracle.Field { return a.levels[a.depth][0] }

// Depth returns the configured tree depth.
func (a *AggregateTree) Depth() int { return a.depth }

// ChildCount returns the number of child roots composed.
func (a *AggregateTree) ChildCount() int { return a.count }

// GenerateProof builds a membership proof that childID's root is included
// in the aggregate root.
func (a *AggregateTree) GenerateProof(childID string) (*Proof, error) {
	idx, ok := a.index[childID]
	if !ok {
		return nil, ErrUnknownAddress{ID: childID}
	}
	siblings, path := siblingsAndPath(a.levels, idx)
	return &Proof{
		Root:        a.Root(),
		Leaf:        a.levels[0][idx],
		Siblings:    siblings,
		PathIndices: path,
		Depth:       a.depth,
	}, nil
}

// SortedNamedRoots returns children sorted by ID, a convenience for callers
// that want a deterministic composition order rather than discovery order.
func SortedNamedRoots(children []NamedRoot) []NamedRoot {
	out := make([]NamedRoot, len(children))
	copy(out, children)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
