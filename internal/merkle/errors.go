// Copyright 2025 Shadow Atlas Contributors

package merkle

import (
	"errors"
	"fmt"
)

// ErrUnknownDepth is returned when a configured depth is not one of the
// deployed verifier's accepted values {18, 20, 22, 24}.
var ErrUnknownDepth = errors.New("merkle: unknown tree depth")

// ErrCapacityExceeded is returned when the input set is larger than 2^depth.
type ErrCapacityExceeded struct {
	Depth    int
	Capacity int
	Count    int
}

func (e ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("merkle: %d leaves exceed capacity %d at depth %d", e.Count, e.Capacity, e.Depth)
}

// ErrDuplicateLeaf is returned when the input set contains the same address
// identifier twice. Up to five offending identifiers are listed (spec §4.F).
type ErrDuplicateLeaf struct {
	Duplicates []string
}

func (e ErrDuplicateLeaf) Error() string {
	return fmt.Sprintf("merkle: duplicate leaf identifiers: %v", e.Duplicates)
}

// ErrUnknownAddress is returned by GenerateProof for an id absent from the
// tree's address index.
type ErrUnknownAddress struct {
	ID string
}

func (e ErrUnknownAddress) Error() string {
	return fmt.Sprintf("merkle: unknown address %q", e.ID)
}

// ErrTreeNotBuilt guards proof generation against a zero-value Tree.
var ErrTreeNotBuilt = errors.New("merkle: tree not built")
