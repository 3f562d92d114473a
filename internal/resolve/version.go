// Copyright 2025 Shadow Atlas Contributors
//
// Version Resolver (spec §4.D, second half). Operates on a
// boundary.BoundaryVersionChain — an arena of values plus string IDs per
// DESIGN.md, never a graph of heap-linked nodes.

package resolve

import (
	"fmt"
	"time"

	"github.com/shadowatlas/registry/internal/boundary"
)

// VersionQuery is the (boundaryId, layerType, stateFips, asOfDate, ...)
// query of §4.D.
type VersionQuery struct {
	BoundaryID    string
	LayerType     boundary.Kind
	StateFips     string
	AsOfDate      time.Time
	Election      string // optional, "" means unspecified
	IncludeHistory bool
}

// VersionResolution is the outcome of resolving a version query.
type VersionResolution struct {
	Version    boundary.VersionedBoundary
	Confidence float64
	Warnings   []string
	History    []boundary.VersionedBoundary // populated iff IncludeHistory
}

var statusConfidence = map[boundary.VersionStatus]float64{
	boundary.VersionEnacted:    1.0,
	boundary.VersionRemedial:   0.9,
	boundary.VersionInterim:    0.6,
	boundary.VersionChallenged: 0.4,
	boundary.VersionSuperseded: 0,
	boundary.VersionEnjoined:   0,
}

// effectiveAt reports whether v is legally effective at asOf: [from, until).
func effectiveAt(v boundary.VersionedBoundary, asOf time.Time) bool {
	if asOf.Before(v.LegalEffectiveFrom) {
		return false
	}
	if v.LegalEffectiveUntil != nil && !asOf.Before(*v.LegalEffectiveUntil) {
		return false
	}
	return true
}

func listsElection(v boundary.VersionedBoundary, election string) bool {
	for _, e := range v.ApplicableElections {
		if e == election {
			return true
		}
	}
	return false
}

// ResolveVersion implements the algorithm of §4.D.
func ResolveVersion(chain boundary.BoundaryVersionChain, q VersionQuery) (VersionResolution, error) {
	if chain.BoundaryID != q.BoundaryID {
		return VersionResolution{}, fmt.Errorf("resolve: chain %s does not match query boundary %s", chain.BoundaryID, q.BoundaryID)
	}
	if len(chain.Versions) == 0 {
		return VersionResolution{}, fmt.Errorf("resolve: version chain %s has no versions", chain.BoundaryID)
	}

	var effective []boundary.VersionedBoundary
	for _, v := range chain.Versions {
		if effectiveAt(v, q.AsOfDate) {
			effective = append(effective, v)
		}
	}

	var warnings []string

	if len(effective) == 0 {
		fallback, conf, warn := fallbackVersion(chain.Versions, q.AsOfDate)
		res := VersionResolution{Version: fallback, Confidence: conf, Warnings: []string{warn}}
		if q.IncludeHistory {
			res.History = chain.Versions
		}
		return res, nil
	}

	if q.Election != "" {
		var restricted []boundary.VersionedBoundary
		for _, v := range effective {
			if listsElection(v, q.Election) {
				restricted = append(restricted, v)
			}
		}
		if len(restricted) > 0 {
			effective = restricted
		}
	}

	var chosen boundary.VersionedBoundary
	if len(effective) == 1 {
		chosen = effective[0]
	} else {
		chosen = breakTie(effective)
	}

	confidence := statusConfidence[chosen.Status]
	warnings = append(warnings, versionWarnings(chosen, chain.Versions)...)

	res := VersionResolution{Version: chosen, Confidence: confidence, Warnings: warnings}
	if q.IncludeHistory {
		res.History = chain.Versions
	}
	return res, nil
}

// fallbackVersion implements §4.D step 2: closest future version at 0.3
// confidence, else most recent past version at 0.2 confidence.
func fallbackVersion(versions []boundary.VersionedBoundary, asOf time.Time) (boundary.VersionedBoundary, float64, string) {
	var closestFuture *boundary.VersionedBoundary
	var mostRecentPast *boundary.VersionedBoundary

	for i := range versions {
		v := &versions[i]
		if v.LegalEffectiveFrom.After(asOf) {
			if closestFuture == nil || v.LegalEffectiveFrom.Before(closestFuture.LegalEffectiveFrom) {
				closestFuture = v
			}
		} else {
			if mostRecentPast == nil || v.LegalEffectiveFrom.After(mostRecentPast.LegalEffectiveFrom) {
				mostRecentPast = v
			}
		}
	}

	if closestFuture != nil {
		return *closestFuture, 0.3, fmt.Sprintf("no version is effective on the query date; falling back to the closest future version effective %s", closestFuture.LegalEffectiveFrom.Format("2006-01-02"))
	}
	return *mostRecentPast, 0.2, fmt.Sprintf("no version is effective on the query date; falling back to the most recent past version effective %s", mostRecentPast.LegalEffectiveFrom.Format("2006-01-02"))
}

// breakTie implements §4.D step 5: higher court beats lower; within the
// same court, mandate > remedial > interim > injunction; then most recent
// order date.
func breakTie(candidates []boundary.VersionedBoundary) boundary.VersionedBoundary {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if beats(c, best) {
			best = c
		}
	}
	return best
}

// beats orders two simultaneously-effective versions: the more recently
// effective version wins outright (it superseded the law in force before
// it); only versions effective on the same date fall through to
// court-order precedence.
func beats(a, b boundary.VersionedBoundary) bool {
	if !a.LegalEffectiveFrom.Equal(b.LegalEffectiveFrom) {
		return a.LegalEffectiveFrom.After(b.LegalEffectiveFrom)
	}
	if a.CourtOrder != nil && b.CourtOrder != nil {
		if a.CourtOrder.CourtLevel.Stronger(b.CourtOrder.CourtLevel) {
			return true
		}
		if b.CourtOrder.CourtLevel.Stronger(a.CourtOrder.CourtLevel) {
			return false
		}
		if a.CourtOrder.OrderType.Stronger(b.CourtOrder.OrderType) {
			return true
		}
		if b.CourtOrder.OrderType.Stronger(a.CourtOrder.OrderType) {
			return false
		}
		return a.CourtOrder.OrderDate.After(b.CourtOrder.OrderDate)
	}
	if a.CourtOrder != nil {
		return true
	}
	if b.CourtOrder != nil {
		return false
	}
	return a.Sequence > b.Sequence
}

// versionWarnings implements §4.D step 6.
func versionWarnings(chosen boundary.VersionedBoundary, all []boundary.VersionedBoundary) []string {
	var warnings []string
	if chosen.CourtOrder != nil && chosen.CourtOrder.Appealed {
		warnings = append(warnings, fmt.Sprintf("version %s is under appeal (%s)", chosen.VersionID, chosen.CourtOrder.AppealStatus))
	}
	if chosen.Status == boundary.VersionChallenged {
		warnings = append(warnings, fmt.Sprintf("version %s is under active legal challenge", chosen.VersionID))
	}
	if chosen.Status == boundary.VersionInterim {
		warnings = append(warnings, fmt.Sprintf("version %s is an interim map", chosen.VersionID))
	}
	for _, v := range all {
		if v.VersionID == chosen.VersionID {
			continue
		}
		if v.Status == boundary.VersionSuperseded || v.Status == boundary.VersionEnjoined {
			continue
		}
		if v.Sequence > chosen.Sequence {
			warnings = append(warnings, fmt.Sprintf("a strictly newer non-superseded version %s exists", v.VersionID))
		}
	}
	return warnings
}
