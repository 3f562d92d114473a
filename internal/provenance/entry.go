// Copyright 2025 Shadow Atlas Contributors

package provenance

import (
	"fmt"
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
)

// ErrInvalidEntry is a programming error: a provenance entry failed
// required-field or bounds validation (spec §4.E, §7 kind 1).
type ErrInvalidEntry struct {
	Reason string
}

func (e ErrInvalidEntry) Error() string {
	return fmt.Sprintf("provenance: invalid entry: %s", e.Reason)
}

// ValidateEntry checks the required fields and bounds of §4.E:
// f, g, conf, auth, why (non-empty), tried (non-empty), blocked, ts, aid.
func ValidateEntry(r boundary.ProvenanceRecord) error {
	if r.FIPS == "" {
		return ErrInvalidEntry{"f (fips) is required"}
	}
	if r.GranularityTier < 0 || r.GranularityTier > 4 {
		return ErrInvalidEntry{fmt.Sprintf("g must be in [0,4], got %d", r.GranularityTier)}
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return ErrInvalidEntry{fmt.Sprintf("conf must be in [0,100], got %d", r.Confidence)}
	}
	if r.AuthorityLevel < 0 || r.AuthorityLevel > 5 {
		return ErrInvalidEntry{fmt.Sprintf("auth must be in [0,5], got %d", r.AuthorityLevel)}
	}
	if len(r.Why) == 0 {
		return ErrInvalidEntry{"why must be non-empty"}
	}
	if len(r.Tried) == 0 {
		return ErrInvalidEntry{"tried must be non-empty"}
	}
	if r.Timestamp == "" {
		return ErrInvalidEntry{"ts is required"}
	}
	if _, err := time.Parse(time.RFC3339, r.Timestamp); err != nil {
		return ErrInvalidEntry{fmt.Sprintf("ts must be ISO-8601: %v", err)}
	}
	if r.AgentID == "" {
		return ErrInvalidEntry{"aid is required"}
	}
	return nil
}
