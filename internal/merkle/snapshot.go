// Copyright 2025 Shadow Atlas Contributors
//
// Snapshot serialization (spec §4.F "Serialization", §9 on-disk formats):
// an exportToIPFS-style JSON document carrying the root, every leaf
// indexed, and a metadata block that binds the root to a specific
// downstream verifier contract.

package merkle

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shadowatlas/registry/internal/hashoracle"
)

// LeafRecord is one indexed leaf in a snapshot.
type LeafRecord struct {
	Index int    `json:"index"`
	Hash  string `json:"hash"`
}

// Metadata describes the tree a snapshot was generated from.
type Metadata struct {
	Depth            int       `json:"depth"`
	CircuitDepth     int       `json:"circuitDepth"`
	Capacity         int       `json:"capacity"`
	AddressCount     int       `json:"addressCount"`
	GeneratedAt      time.Time `json:"generatedAt"`
	HashFunction     string    `json:"hashFunction"`
	Implementation   string    `json:"implementation"`
	VerifierContract string    `json:"verifierContract"`
}

// Snapshot is the on-disk JSON document for one committed tree.
type Snapshot struct {
	Version int          `json:"version"`
	Root    string       `json:"root"`
	Leaves  []LeafRecord  `json:"leaves"`
	Metadata Metadata    `json:"metadata"`
}

// SnapshotVersion is the current snapshot schema version.
const SnapshotVersion = 1

// BuildSnapshot serializes a Tree into a Snapshot, ready for JSON encoding
// and handoff to the blob store. generatedAt is taken from the caller's
// clock, not time.Now, so snapshot generation stays deterministic in tests.
func BuildSnapshot(t *Tree, verifierContract string, generatedAt time.Time) Snapshot {
	leaves := make([]LeafRecord, t.capacity)
	for i := 0; i < t.capacity; i++ {
		leaves[i] = LeafRecord{Index: i, Hash: fieldHex(t.levels[0][i])}
	}
	return Snapshot{
		Version: SnapshotVersion,
		Root:    fieldHex(t.Root()),
		Leaves:  leaves,
		Metadata: Metadata{
			Depth:            t.depth,
			CircuitDepth:     t.depth,
			Capacity:         t.capacity,
			AddressCount:     t.addressCount,
			GeneratedAt:      generatedAt,
			HashFunction:     "poseidon2-bn254",
			Implementation:   "shadowatlas-registry/internal/merkle",
			VerifierContract: verifierContract,
		},
	}
}

// BuildAggregateSnapshot serializes an AggregateTree the same way.
func BuildAggregateSnapshot(a *AggregateTree, verifierContract string, generatedAt time.Time) Snapshot {
	leaves := make([]LeafRecord, a.capacity)
	for i := 0; i < a.capacity; i++ {
		leaves[i] = LeafRecord{Index: i, Hash: fieldHex(a.levels[0][i])}
	}
	return Snapshot{
		Version: SnapshotVersion,
		Root:    fieldHex(a.Root()),
		Leaves:  leaves,
		Metadata: Metadata{
			Depth:            a.depth,
			CircuitDepth:     a.depth,
			Capacity:         a.capacity,
			AddressCount:     a.count,
			GeneratedAt:      generatedAt,
			HashFunction:     "poseidon2-bn254",
			Implementation:   "shadowatlas-registry/internal/merkle",
			VerifierContract: verifierContract,
		},
	}
}

// Marshal encodes a Snapshot as JSON bytes, ready for the blob store.
func (s Snapshot) Marshal() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("merkle: marshal snapshot: %w", err)
	}
	return b, nil
}

// UnmarshalSnapshot decodes a previously-marshaled snapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("merkle: unmarshal snapshot: %w", err)
	}
	return s, nil
}

func fieldHex(f hashoracle.Field) string {
	b := f.Bytes()
	return hex.EncodeToString(b[:])
}
