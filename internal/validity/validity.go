// Copyright 2025 Shadow Atlas Contributors
//
// Validity & Gap Engine (spec §4.B). Every function here is pure given its
// inputs; "now" is always threaded in explicitly (never read from the
// system clock directly) so gap-period boundaries are deterministically
// testable.

package validity

import (
	"fmt"
	"time"

	"github.com/shadowatlas/registry/internal/authority"
	"github.com/shadowatlas/registry/internal/boundary"
)

// Window computes the Validity Window for one (sourceType, releaseDate,
// boundaryKind) triple, clamped for redistricting-gap behavior as of now.
func Window(sourceID string, sourceType boundary.SourceType, releaseDate time.Time, kind boundary.Kind, now time.Time) (boundary.ValidityWindow, error) {
	if releaseDate.IsZero() {
		return boundary.ValidityWindow{}, fmt.Errorf("validity: releaseDate must not be zero")
	}

	switch sourceType {
	case boundary.SourceTypePrimary:
		validFrom := releaseDate
		validUntil := authority.NextCycleJan1After(releaseDate)
		conf := 0.0
		if !now.Before(validFrom) && now.Before(validUntil) {
			conf = 1.0
		}
		return boundary.ValidityWindow{
			SourceID: sourceID, SourceType: sourceType,
			ValidFrom: validFrom, ValidUntil: validUntil, Confidence: conf,
		}, nil

	case boundary.SourceTypeTiger, boundary.SourceTypeAggregator:
		validFrom := time.Date(releaseDate.Year(), time.July, 1, 0, 0, 0, 0, time.UTC)
		validUntil := time.Date(releaseDate.Year()+1, time.July, 1, 0, 0, 0, 0, time.UTC)
		conf := aggregatorConfidence(validFrom, validUntil, now)
		conf = applyGapOverride(conf, kind, now)
		return boundary.ValidityWindow{
			SourceID: sourceID, SourceType: sourceType,
			ValidFrom: validFrom, ValidUntil: validUntil, Confidence: conf,
		}, nil

	default:
		return boundary.ValidityWindow{}, fmt.Errorf("validity: unknown source type %q", sourceType)
	}
}

// aggregatorConfidence implements the Tiger/Aggregator decay curve: 1.0
// until 75% of the window has elapsed, then linear decay to 0.4 at
// validUntil, 0 outside the window entirely.
func aggregatorConfidence(validFrom, validUntil, now time.Time) float64 {
	if now.Before(validFrom) || !now.Before(validUntil) {
		return 0
	}
	length := validUntil.Sub(validFrom)
	elapsed := now.Sub(validFrom)
	fraction := float64(elapsed) / float64(length)
	if fraction <= 0.75 {
		return 1.0
	}
	// Linear from 1.0 at fraction=0.75 to 0.4 at fraction=1.0.
	decayProgress := (fraction - 0.75) / 0.25
	return 1.0 - decayProgress*0.6
}

// applyGapOverride substitutes the redistricting-gap floor confidence
// (§4.B table) for legislative-kind Tiger/Aggregator sources when now falls
// inside a known redistricting year, then applies the boundary-kind
// multiplier.
func applyGapOverride(conf float64, kind boundary.Kind, now time.Time) float64 {
	if conf <= 0 {
		return conf
	}
	year := now.Year()
	month := int(now.Month())

	var gapFloor float64
	var inGap bool
	switch {
	case year%10 == 1:
		gapFloor, inGap = 0.5, true
	case year%10 == 2 && month <= 6:
		gapFloor, inGap = 0.3, true
	case year%10 == 2 && month >= 7:
		gapFloor, inGap = 0.9, true
	}
	if !inGap {
		return conf
	}
	if kind.IsLegislative() {
		conf = gapFloor
	}
	return conf * kindMultiplier(kind, inGap)
}

// kindMultiplier applies the boundary-kind multiplier used during a gap.
func kindMultiplier(kind boundary.Kind, inGap bool) float64 {
	if !inGap {
		return 1.0
	}
	switch {
	case kind.IsLegislative():
		return 0.3
	case kind == boundary.KindVotingPrecinct || kind == boundary.KindSchoolDistrict:
		return 0.6
	default:
		return 0.8
	}
}

// IsInRedistrictingGap is true iff now.Year() is a registered gap year
// (year mod 10 == 2 of a known cycle) and now.Month() is in [1,6], in UTC.
func IsInRedistrictingGap(now time.Time) bool {
	now = now.UTC()
	for _, c := range knownGapYears() {
		if now.Year() == c && now.Month() >= time.January && now.Month() <= time.June {
			return true
		}
	}
	return false
}

func knownGapYears() []int {
	years := make([]int, 0, 8)
	for y := 1980; y <= 2100; y += 10 {
		gap := y + 2
		if authority.IsRedistrictingWindow(gap) {
			years = append(years, gap)
		}
	}
	return years
}

// CheckBoundaryGap implements the piecewise logic of §4.B.
func CheckBoundaryGap(kind boundary.Kind, state string, finalization *boundary.StateFinalizationRecord, now time.Time) boundary.GapStatus {
	now = now.UTC()

	if !kind.IsLegislative() && kind != boundary.KindVotingPrecinct {
		return boundary.GapStatus{Phase: boundary.GapNone, Recommendation: boundary.RecommendUseTiger, Reason: "non-legislative, non-precinct boundary kind is never gap-sensitive"}
	}

	if kind == boundary.KindVotingPrecinct {
		if now.Month() <= 3 || authority.IsRedistrictingWindow(now.Year()-1) {
			return boundary.GapStatus{
				Phase: boundary.GapPostFinalizationPreTiger, Recommendation: boundary.RecommendUsePrimary,
				Reason: "voting precincts in Q1, or any post-redistricting year, trail the annual aggregator update",
			}
		}
	}

	if !authority.IsRedistrictingWindow(now.Year()) {
		return boundary.GapStatus{Phase: boundary.GapNone, Recommendation: boundary.RecommendUseTiger, Reason: "legislative boundary kind outside a redistricting year"}
	}

	if finalization == nil {
		return boundary.GapStatus{
			Phase: boundary.GapPreFinalization, Recommendation: boundary.RecommendUseTiger,
			Reason: fmt.Sprintf("no state finalization record for %s in a redistricting year; assuming pre-finalization", state),
		}
	}

	switch {
	case now.Before(finalization.EffectiveDate):
		return boundary.GapStatus{Phase: boundary.GapPreFinalization, Recommendation: boundary.RecommendUseTiger, Reason: "state map not yet legally effective"}

	case now.Before(gapPeriodEnd(now.Year())):
		lagDays := int(now.Sub(finalization.EffectiveDate).Hours() / 24)
		return boundary.GapStatus{
			Phase: boundary.GapPostFinalizationPreTiger, Recommendation: boundary.RecommendUsePrimary,
			Reason:  fmt.Sprintf("state map effective %d days ago but TIGER/Line has not yet published the redistricted boundaries", lagDays),
			LagDays: lagDays,
		}

	default:
		return boundary.GapStatus{Phase: boundary.GapPostTiger, Recommendation: boundary.RecommendUseTiger, Reason: "TIGER/Line has published post-redistricting boundaries"}
	}
}

// gapPeriodEnd returns Jul 1 of the gap year covering year.
func gapPeriodEnd(year int) time.Time {
	gapYear := year
	if year%10 == 1 {
		gapYear = year + 1
	}
	return time.Date(gapYear, time.July, 1, 0, 0, 0, 0, time.UTC)
}
