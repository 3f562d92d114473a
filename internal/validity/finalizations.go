// Copyright 2025 Shadow Atlas Contributors
//
// HistoricalFinalizations is a small, hand-populated table of past-cycle
// State Finalization Records (spec §3: "Populated from historical record
// for past cycles; empty for future cycles until populated"). It exists so
// CheckBoundaryGap can be exercised against real 2022-cycle dates without
// requiring a caller to hand-construct a record for every test.

package validity

import (
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
)

var historicalFinalizations = map[string]boundary.StateFinalizationRecord{
	"CA": {
		State:         "CA",
		FinalizedDate: time.Date(2021, time.December, 20, 0, 0, 0, 0, time.UTC),
		EffectiveDate: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	},
	"NC": {
		State:         "NC",
		FinalizedDate: time.Date(2021, time.November, 4, 0, 0, 0, 0, time.UTC),
		EffectiveDate: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		CourtChallenged: true,
		Notes:         "Remedial map adopted after NC Supreme Court litigation over the original enacted plan.",
	},
}

// HistoricalFinalization returns the hand-populated finalization record for
// state, if one is known.
func HistoricalFinalization(state string) (boundary.StateFinalizationRecord, bool) {
	r, ok := historicalFinalizations[state]
	return r, ok
}
