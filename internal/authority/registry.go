// Copyright 2025 Shadow Atlas Contributors
//
// Authority Registry (spec §4.A): a process-wide, read-only table of the
// legally authoritative sources for every boundary kind. Loaded once from
// the embedded YAML table; never mutated afterward. Per §9 "Dynamic
// dispatch over sources" this is a statically-built table keyed by kind,
// not an interface hierarchy — SourceType is a tagged variant.

package authority

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/shadowatlas/registry/internal/boundary"
)

//go:embed data/authorities.yaml
var authoritiesYAML []byte

type yamlSource struct {
	ProviderName    string `yaml:"provider_name"`
	Jurisdiction    string `yaml:"jurisdiction"`
	URL             string `yaml:"url"`
	Format          string `yaml:"format"`
	MachineReadable bool   `yaml:"machine_readable"`
}

type yamlEntry struct {
	Kind                 string       `yaml:"kind"`
	LegalEntity          string       `yaml:"legal_entity"`
	LegalBasis           string       `yaml:"legal_basis"`
	UpdateTrigger        string       `yaml:"update_trigger"`
	NormalLagDays        int          `yaml:"normal_lag_days"`
	RedistrictingLagDays int          `yaml:"redistricting_lag_days"`
	PrimarySources       []yamlSource `yaml:"primary_sources"`
	AggregatorSources    []yamlSource `yaml:"aggregator_sources"`
}

type yamlRoot struct {
	Entries []yamlEntry `yaml:"entries"`
}

// Registry is the loaded, read-only authority table.
type Registry struct {
	byKind map[boundary.Kind]boundary.AuthorityEntry
}

var (
	loadOnce sync.Once
	loaded   *Registry
	loadErr  error
)

// Default returns the process-wide Registry, parsing the embedded table on
// first use. A malformed embedded table is a build-time defect, so Default
// panics rather than returning an error — callers never recover from it.
func Default() *Registry {
	loadOnce.Do(func() {
		loaded, loadErr = load(authoritiesYAML)
	})
	if loadErr != nil {
		panic(fmt.Errorf("authority: failed to load static table: %w", loadErr))
	}
	return loaded
}

func load(raw []byte) (*Registry, error) {
	var root yamlRoot
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("authority: parse yaml: %w", err)
	}

	r := &Registry{byKind: make(map[boundary.Kind]boundary.AuthorityEntry, len(root.Entries))}
	for _, e := range root.Entries {
		kind := boundary.Kind(e.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("authority: unknown boundary kind %q in static table", e.Kind)
		}
		entry := boundary.AuthorityEntry{
			Kind:          kind,
			LegalEntity:   e.LegalEntity,
			LegalBasis:    e.LegalBasis,
			UpdateTrigger: boundary.UpdateTrigger(e.UpdateTrigger),
			NormalLag:     boundary.LagBounds{NormalDays: e.NormalLagDays},
			RedistrictingLag: boundary.LagBounds{RedistrictingDays: e.RedistrictingLagDays},
		}
		for _, s := range e.PrimarySources {
			entry.PrimarySources = append(entry.PrimarySources, boundary.SourceDescriptor{
				SourceType:      boundary.SourceTypePrimary,
				ProviderName:    s.ProviderName,
				Jurisdiction:    s.Jurisdiction,
				URL:             s.URL,
				Format:          s.Format,
				MachineReadable: s.MachineReadable,
			})
		}
		for _, s := range e.AggregatorSources {
			entry.AggregatorSources = append(entry.AggregatorSources, boundary.SourceDescriptor{
				SourceType:      boundary.SourceTypeAggregator,
				ProviderName:    s.ProviderName,
				Jurisdiction:    s.Jurisdiction,
				URL:             s.URL,
				Format:          s.Format,
				MachineReadable: s.MachineReadable,
			})
		}
		if _, dup := r.byKind[kind]; dup {
			return nil, fmt.Errorf("authority: duplicate entry for kind %q", e.Kind)
		}
		r.byKind[kind] = entry
	}
	return r, nil
}

// ErrUnknownKind is raised when GetAuthority is asked about a kind outside
// the closed enumeration. This is a programming error per §7: it aborts
// the calling operation rather than degrading gracefully.
type ErrUnknownKind struct {
	Kind boundary.Kind
}

func (e ErrUnknownKind) Error() string {
	return fmt.Sprintf("authority: unknown boundary kind %q", e.Kind)
}

// GetAuthority is total over the Kind enum: every valid kind has a row in
// the embedded table, and an invalid kind fails loudly.
func (r *Registry) GetAuthority(kind boundary.Kind) (boundary.AuthorityEntry, error) {
	entry, ok := r.byKind[kind]
	if !ok {
		return boundary.AuthorityEntry{}, ErrUnknownKind{Kind: kind}
	}
	return entry, nil
}

// GetPrimarySourcesForState returns every primary source, across all
// boundary kinds, that claims the given jurisdiction or carries the "*"
// wildcard.
func (r *Registry) GetPrimarySourcesForState(state string) []boundary.SourceDescriptor {
	var out []boundary.SourceDescriptor
	for _, kind := range sortedKinds(r.byKind) {
		entry := r.byKind[kind]
		for _, s := range entry.PrimarySources {
			if s.Jurisdiction == state || s.Jurisdiction == "*" {
				out = append(out, s)
			}
		}
	}
	return out
}

// PreferenceOf returns the 1-based preference rank of a primary source
// within its authority entry: the registry's declared order is the
// preference order, lower is stronger (§4.D).
func (r *Registry) PreferenceOf(kind boundary.Kind, providerName string) int {
	entry, ok := r.byKind[kind]
	if !ok {
		return 0
	}
	for i, s := range entry.PrimarySources {
		if s.ProviderName == providerName {
			return i + 1
		}
	}
	for i, s := range entry.AggregatorSources {
		if s.ProviderName == providerName {
			return i + 1
		}
	}
	return 0
}

func sortedKinds(m map[boundary.Kind]boundary.AuthorityEntry) []boundary.Kind {
	out := make([]boundary.Kind, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Deterministic order matters for GetPrimarySourcesForState callers that
	// compare golden output in tests.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
