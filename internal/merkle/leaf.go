// Copyright 2025 Shadow Atlas Contributors
//
// Leaf hash construction (spec §4.F): each (id, boundaryKind, geometryHash,
// authorityLevel, source?) is folded into a single field element through a
// fixed four-step recipe before it ever reaches the tree builder.

package merkle

import (
	"fmt"

	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/hashoracle"
)

// LeafHash computes the field element for one address/district datum,
// following the four-step recipe: typeHash, idHash, authorityField
// (optionally folding a provenance commitment), then H4 of all four.
func LeafHash(oracle *hashoracle.Oracle, input boundary.MerkleLeafInput) (hashoracle.Field, error) {
	var zero hashoracle.Field

	typeHash := oracle.HashBytes([]byte(input.BoundaryKind))
	idHash := oracle.HashBytes([]byte(input.ID))

	// geometryHash arrives as a hex sha-256 digest (256 bits), wider than the
	// BN254 scalar field (254 bits); fold it through the oracle rather than
	// risk an out-of-range SetBytes.
	geometryField := oracle.HashBytes([]byte(input.GeometryHash))

	authorityField, err := authorityFieldFor(oracle, input)
	if err != nil {
		return zero, fmt.Errorf("merkle: leaf %q: %w", input.ID, err)
	}

	return oracle.Hash4(typeHash, idHash, geometryField, authorityField), nil
}

// authorityFieldFor implements step 3 of the leaf recipe: fold a provenance
// commitment into the authority level when one is present and complete,
// otherwise use the bare authority level.
func authorityFieldFor(oracle *hashoracle.Oracle, input boundary.MerkleLeafInput) (hashoracle.Field, error) {
	var field hashoracle.Field

	src := input.Source
	if src == nil || src.URL == "" || src.ChecksumHex == "" {
		if input.AuthorityLevel < 1 || input.AuthorityLevel > 5 {
			return field, fmt.Errorf("authorityLevel must be in [1,5], got %d", input.AuthorityLevel)
		}
		field.SetInt64(int64(input.AuthorityLevel))
		return field, nil
	}

	provenanceString := src.URL + "|" + src.ChecksumHex + "|" + src.ISO8601Timestamp
	provenanceHash := oracle.HashBytes([]byte(provenanceString))

	var authLevelField hashoracle.Field
	authLevelField.SetInt64(int64(input.AuthorityLevel))
	return oracle.Hash2(authLevelField, provenanceHash), nil
}
