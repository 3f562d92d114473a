// Copyright 2025 Shadow Atlas Contributors

package authority

import (
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
)

func dateUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// knownCycles is the fixed set of redistricting cycles this registry knows
// about. Cycle N covers census year N0, finalization year N1, gap year N2.
// This table is extended by one entry every ten years; it is not derived
// from any external source.
var knownCycles = []boundary.RedistrictingCycle{
	cycle(2000), cycle(2010), cycle(2020), cycle(2030), cycle(2040),
}

func cycle(censusYear int) boundary.RedistrictingCycle {
	finalization := censusYear + 1
	gap := censusYear + 2
	return boundary.RedistrictingCycle{
		CensusYear:       censusYear,
		FinalizationYear: finalization,
		GapYear:          gap,
		GapStart:         dateUTC(gap, 1, 1),
		GapEnd:           dateUTC(gap, 7, 1),
		TigerExpectedRelease: dateUTC(gap, 7, 15),
	}
}

// IsRedistrictingWindow is a pure predicate: true iff year is the
// finalization year or the gap year of a known cycle.
func IsRedistrictingWindow(year int) bool {
	for _, c := range knownCycles {
		if year == c.FinalizationYear || year == c.GapYear {
			return true
		}
	}
	return false
}

// CycleFor returns the known cycle whose gap year matches year mod 10 == 2
// relationship, i.e. the cycle that "owns" the given year, and whether one
// was found.
func CycleFor(year int) (boundary.RedistrictingCycle, bool) {
	for _, c := range knownCycles {
		if year == c.CensusYear || year == c.FinalizationYear || year == c.GapYear {
			return c, true
		}
	}
	return boundary.RedistrictingCycle{}, false
}

// NextCycleJan1After returns Jan 1 of the redistricting cycle strictly
// after t — used by the Validity Engine to bound a Primary source's
// validUntil (§4.B).
func NextCycleJan1After(t time.Time) time.Time {
	year := t.Year()
	for _, c := range knownCycles {
		if c.GapStart.Year() > year {
			return c.GapStart
		}
	}
	// No configured cycle extends far enough into the future: extrapolate
	// the fixed 10-year periodicity from the last known cycle.
	last := knownCycles[len(knownCycles)-1]
	extra := ((year - last.GapStart.Year()) / 10 + 1) * 10
	return dateUTC(last.GapStart.Year()+extra, 1, 1)
}
