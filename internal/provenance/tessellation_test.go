// Copyright 2025 Shadow Atlas Contributors

package provenance

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
)

func TestIsValidationCurrent_MatchingGeometry(t *testing.T) {
	geometry := []byte(`{"type":"Polygon","coordinates":[]}`)
	sum := sha256.Sum256(geometry)
	rec := boundary.TessellationProofRecord{
		Validated:    true,
		ValidatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		GeometryHash: hex.EncodeToString(sum[:]),
	}

	if !IsValidationCurrent(rec, geometry) {
		t.Error("expected cached validation to be current for unchanged geometry")
	}
}

func TestIsValidationCurrent_ChangedGeometry(t *testing.T) {
	original := []byte(`{"type":"Polygon","coordinates":[[0,0]]}`)
	sum := sha256.Sum256(original)
	rec := boundary.TessellationProofRecord{
		Validated:    true,
		GeometryHash: hex.EncodeToString(sum[:]),
	}

	changed := []byte(`{"type":"Polygon","coordinates":[[1,1]]}`)
	if IsValidationCurrent(rec, changed) {
		t.Error("expected cached validation to be stale after geometry changed")
	}
}
