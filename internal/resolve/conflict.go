// Copyright 2025 Shadow Atlas Contributors
//
// Conflict Resolver (spec §4.D, first half). A pure function over a slice
// of candidates for the same boundary ID — no I/O, no collaborators.

package resolve

import (
	"fmt"
	"strings"
)

// Candidate is one proposed record for a boundary, scored by the resolver.
type Candidate struct {
	ProviderName string
	AuthorityLevel int // 1..5, higher is stronger
	Preference     int // registry rank within authority level, lower is stronger
	Freshness      float64 // window-derived confidence at the query instant
	Record         any     // the underlying boundary record, opaque to the resolver
}

// Resolution is the outcome of resolving a candidate set.
type Resolution struct {
	Winner     Candidate
	Confidence float64
	Reasoning  string
}

// score implements the scoring formula of §4.D.
func score(c Candidate) float64 {
	return float64(c.AuthorityLevel)*1000 + float64(100-c.Preference)*100 + c.Freshness*10
}

// Resolve picks the single winning candidate by authority > preference >
// freshness and computes a confidence and human-readable reasoning.
func Resolve(candidates []Candidate) (Resolution, error) {
	if len(candidates) == 0 {
		return Resolution{}, fmt.Errorf("resolve: no candidates to resolve")
	}
	if len(candidates) == 1 {
		return Resolution{Winner: candidates[0], Confidence: 1.0, Reasoning: "only one candidate available"}, nil
	}

	winnerIdx := 0
	winnerScore := score(candidates[0])
	for i := 1; i < len(candidates); i++ {
		s := score(candidates[i])
		if s > winnerScore {
			winnerIdx, winnerScore = i, s
		}
	}

	winner := candidates[winnerIdx]
	runnerUpScore := -1.0
	runnerUpIdx := -1
	for i, c := range candidates {
		if i == winnerIdx {
			continue
		}
		s := score(c)
		if s > runnerUpScore {
			runnerUpScore, runnerUpIdx = s, i
		}
	}
	runnerUp := candidates[runnerUpIdx]

	gap := winnerScore - runnerUpScore
	confidence := 0.7*clip(gap/1000, 0, 1) + 0.3*winner.Freshness

	return Resolution{
		Winner:     winner,
		Confidence: confidence,
		Reasoning:  reason(winner, runnerUp),
	}, nil
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// reason assembles the human-readable explanation comparing winner to
// runner-up, per §4.D.
func reason(winner, runnerUp Candidate) string {
	var parts []string
	switch {
	case winner.AuthorityLevel > runnerUp.AuthorityLevel:
		parts = append(parts, "higher authority")
	case winner.Preference < runnerUp.Preference:
		parts = append(parts, "same authority, higher preference")
	default:
		parts = append(parts, "same authority and preference, fresher data")
	}
	parts = append(parts, ageBand(winner.Freshness))
	return strings.Join(parts, "; ")
}

func ageBand(freshness float64) string {
	switch {
	case freshness >= 0.9:
		return "current"
	case freshness >= 0.6:
		return "recent"
	case freshness >= 0.3:
		return "aging"
	default:
		return "stale"
	}
}
