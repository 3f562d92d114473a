// Copyright 2025 Shadow Atlas Contributors
//
// Core data model shared by the discovery/provenance pipeline and the
// Merkle commitment engine. Types here are plain values: no behavior,
// no I/O. Component packages (authority, validity, freshness, resolve,
// provenance, merkle) build on top of these.

package boundary

import "time"

// Kind identifies the political level a polygon describes. The set is
// closed; adding a new kind requires updating every authority-table
// entry that switches on it.
type Kind string

const (
	KindNationalLegislativeLower Kind = "national-legislative-lower"
	KindNationalLegislativeUpper Kind = "national-legislative-upper"
	KindStateUpper               Kind = "state-upper"
	KindStateLower               Kind = "state-lower"
	KindCounty                   Kind = "county"
	KindMunicipality             Kind = "municipality"
	KindCouncilDistrict          Kind = "council-district"
	KindSchoolDistrict           Kind = "school-district"
	KindVotingPrecinct           Kind = "voting-precinct"
	KindOtherSpecial             Kind = "other-special"
)

// IsLegislative reports whether the kind is subject to redistricting-cycle
// gap logic (§4.B).
func (k Kind) IsLegislative() bool {
	switch k {
	case KindNationalLegislativeLower, KindNationalLegislativeUpper, KindStateUpper, KindStateLower:
		return true
	default:
		return false
	}
}

// Valid reports whether k is one of the closed enumeration members.
func (k Kind) Valid() bool {
	switch k {
	case KindNationalLegislativeLower, KindNationalLegislativeUpper, KindStateUpper, KindStateLower,
		KindCounty, KindMunicipality, KindCouncilDistrict, KindSchoolDistrict,
		KindVotingPrecinct, KindOtherSpecial:
		return true
	default:
		return false
	}
}

// SourceType distinguishes a legal authority from a convenience re-publisher.
type SourceType string

const (
	SourceTypePrimary    SourceType = "primary"
	SourceTypeAggregator SourceType = "aggregator"
	SourceTypeTiger      SourceType = "tiger"
)

// SourceDescriptor identifies one candidate place to fetch a boundary from.
type SourceDescriptor struct {
	SourceType      SourceType
	ProviderName    string
	Jurisdiction    string // state/country code, or "*" for a wildcard primary
	URL             string
	Format          string
	MachineReadable bool
}

// UpdateTrigger enumerates how often an authoritative source is expected
// to change.
type UpdateTrigger string

const (
	TriggerAnnualMonth           UpdateTrigger = "annual-month"
	TriggerCensusYear            UpdateTrigger = "census-year"
	TriggerRedistrictingCycle    UpdateTrigger = "redistricting-cycle-years"
	TriggerEventDriven           UpdateTrigger = "event-driven"
	TriggerManual                UpdateTrigger = "manual"
)

// LagBounds bounds how stale a source is expected to be in each mode.
type LagBounds struct {
	NormalDays        int
	RedistrictingDays int
}

// AuthorityEntry is the per-Kind row of the Authority Registry.
type AuthorityEntry struct {
	Kind             Kind
	LegalEntity      string
	LegalBasis       string
	PrimarySources   []SourceDescriptor // keyed by Jurisdiction
	AggregatorSources []SourceDescriptor
	UpdateTrigger    UpdateTrigger
	NormalLag        LagBounds
	RedistrictingLag LagBounds
}

// ValidityWindow is the time-bounded freshness/confidence envelope of one
// (source, boundary) pair, as computed by the Validity & Gap Engine. It is
// never persisted: §3 says it is recomputed on demand.
type ValidityWindow struct {
	SourceID   string
	SourceType SourceType
	ValidFrom  time.Time
	ValidUntil time.Time
	Confidence float64
}

// RedistrictingCycle describes one fixed 10-year cycle.
type RedistrictingCycle struct {
	CensusYear          int
	FinalizationYear    int
	GapYear             int
	GapStart            time.Time // Jan 1 of GapYear
	GapEnd              time.Time // Jul 1 of GapYear
	TigerExpectedRelease time.Time // ~Jul 15 of GapYear
}

// StateFinalizationRecord records when a state's redistricting map was
// finalized for a given cycle.
type StateFinalizationRecord struct {
	State           string
	FinalizedDate   time.Time
	EffectiveDate   time.Time
	CourtChallenged bool
	Notes           string
}

// GapRecommendation is the action a caller should take given a GapStatus.
type GapRecommendation string

const (
	RecommendUseTiger      GapRecommendation = "use-tiger"
	RecommendUsePrimary    GapRecommendation = "use-primary"
	RecommendWait          GapRecommendation = "wait"
	RecommendManualReview  GapRecommendation = "manual-review"
)

// GapPhase is one sub-phase of a redistricting gap.
type GapPhase string

const (
	GapNone                     GapPhase = "none"
	GapPreFinalization          GapPhase = "pre-finalization"
	GapPostFinalizationPreTiger GapPhase = "post-finalization-pre-tiger"
	GapPostTiger                GapPhase = "post-tiger"
)

// GapStatus is the result of checkBoundaryGap.
type GapStatus struct {
	Phase          GapPhase
	Recommendation GapRecommendation
	Reason         string
	LagDays        int
}

// VersionStatus is the legal status of one version in a chain.
type VersionStatus string

const (
	VersionEnacted    VersionStatus = "enacted"
	VersionInterim    VersionStatus = "interim"
	VersionRemedial   VersionStatus = "remedial"
	VersionSuperseded VersionStatus = "superseded"
	VersionEnjoined   VersionStatus = "enjoined"
	VersionChallenged VersionStatus = "challenged"
)

// CourtLevel ranks courts for tie-breaking (§4.D step 5).
type CourtLevel string

const (
	CourtStateLower      CourtLevel = "state-lower"
	CourtStateSupreme    CourtLevel = "state-supreme"
	CourtFederalDistrict CourtLevel = "federal-district"
	CourtFederalCircuit  CourtLevel = "federal-circuit"
	CourtFederalSupreme  CourtLevel = "federal-supreme"
)

// rank returns a higher-is-stronger ordinal for court precedence.
func (c CourtLevel) rank() int {
	switch c {
	case CourtFederalSupreme:
		return 5
	case CourtFederalCircuit:
		return 4
	case CourtFederalDistrict:
		return 3
	case CourtStateSupreme:
		return 2
	case CourtStateLower:
		return 1
	default:
		return 0
	}
}

// Stronger reports whether c outranks other.
func (c CourtLevel) Stronger(other CourtLevel) bool {
	return c.rank() > other.rank()
}

// OrderType is the kind of court order behind a version.
type OrderType string

const (
	OrderMandate   OrderType = "mandate"
	OrderRemedial  OrderType = "remedial"
	OrderInterim   OrderType = "interim"
	OrderInjunction OrderType = "injunction"
)

// rank gives mandate > remedial > interim > injunction per §4.D step 5.
func (o OrderType) rank() int {
	switch o {
	case OrderMandate:
		return 4
	case OrderRemedial:
		return 3
	case OrderInterim:
		return 2
	case OrderInjunction:
		return 1
	default:
		return 0
	}
}

// Stronger reports whether o outranks other under the same court.
func (o OrderType) Stronger(other OrderType) bool {
	return o.rank() > other.rank()
}

// CourtOrderProvenance documents the court order behind a version, if any.
type CourtOrderProvenance struct {
	CourtLevel         CourtLevel
	OrderType          OrderType
	OrderDate          time.Time
	EffectiveDate      time.Time
	ExpirationDate     *time.Time
	ApplicableElections []string
	Appealed           bool
	AppealStatus       string
}

// VersionedBoundary is one legally-effective version of a boundary.
type VersionedBoundary struct {
	VersionID            string
	Sequence             int
	PreviousVersionID     string // empty if this is the first version
	Status               VersionStatus
	CourtOrder           *CourtOrderProvenance
	LegalEffectiveFrom   time.Time
	LegalEffectiveUntil  *time.Time // nil means open-ended
	ApplicableElections  []string
	MapSource            SourceDescriptor
	GeometryHash         string
	IsCurrent            bool
}

// BoundaryVersionChain is the ordered history of one boundary's versions.
// Modeled as an arena of values plus string IDs per DESIGN.md — no owning
// pointers between versions, traversal is a pure function over the slice.
type BoundaryVersionChain struct {
	BoundaryID        string
	LayerType         Kind
	StateFips         string
	CensusYear        int
	Versions          []VersionedBoundary // ordered by LegalEffectiveFrom
	CurrentVersionID  string
	HasActiveLitigation bool
}

// ProvenanceRecord is the compact on-disk audit entry (§3). Field names are
// abbreviated to match the wire format exactly; json tags carry the
// abbreviations so callers see idiomatic Go field names in code.
type ProvenanceRecord struct {
	FIPS          string   `json:"f"`
	Name          string   `json:"n,omitempty"`
	State         string   `json:"s,omitempty"`
	Population    int64    `json:"p,omitempty"`
	GranularityTier int    `json:"g"`
	FeatureCount  int      `json:"fc,omitempty"`
	Confidence    int      `json:"conf"`
	AuthorityLevel int     `json:"auth"`
	SourceKind    string   `json:"src,omitempty"`
	URL           string   `json:"url,omitempty"`
	Quality       map[string]any `json:"q,omitempty"`
	Why           []string `json:"why"`
	Tried         []int    `json:"tried"`
	Blocked       *string  `json:"blocked"`
	Timestamp     string   `json:"ts"`
	AgentID       string   `json:"aid"`
	Supersedes    string   `json:"sup,omitempty"`
}

// AxiomResults are the four tessellation checks (§3).
type AxiomResults struct {
	Exclusivity  bool
	Exhaustivity bool
	Containment  bool
	Cardinality  bool
}

// TessellationDiagnostics are the numeric supporting facts for a tessellation check.
type TessellationDiagnostics struct {
	DistrictCount      int
	ExpectedCount      int
	TotalOverlapArea   float64
	UncoveredArea      float64
	OutsideBoundaryArea float64
	MunicipalArea      float64
	DistrictUnionArea  float64
	CoverageRatio      float64
}

// TessellationProofRecord is the on-disk record of one tessellation validation.
type TessellationProofRecord struct {
	Validated            bool
	ValidatedAt          time.Time
	GeometryHash         string // sha-256 hex
	AxiomResults         AxiomResults
	Diagnostics          TessellationDiagnostics
	FailedAxiom          string
	FailureReason        string
	ProblematicDistricts []string
	ValidatorVersion     string
}

// ProvenanceSource carries the optional provenance commitment folded into a
// Merkle leaf (§4.F step 3).
type ProvenanceSource struct {
	URL          string
	ChecksumHex  string
	ISO8601Timestamp string
	ProviderTag  string
}

// MerkleLeafInput is one address/district datum to be committed.
type MerkleLeafInput struct {
	ID             string
	BoundaryKind   Kind
	GeometryHash   string // hex
	AuthorityLevel int    // 1..5
	Source         *ProvenanceSource
}

// TreeConfig selects the shape of a Merkle commitment tree (§3).
type TreeConfig struct {
	Depth       int // one of 18, 20, 22, 24
	BatchSize   int // parallelism hint, default 64
	CountryCode string
}

// ValidDepths is the closed set of depths a deployed verifier accepts.
var ValidDepths = [...]int{18, 20, 22, 24}

// ValidDepth reports whether d is one of the accepted tree depths.
func ValidDepth(d int) bool {
	for _, v := range ValidDepths {
		if v == d {
			return true
		}
	}
	return false
}

// DefaultDepthForCountry maps an ISO-3166 alpha-3 country code to a default
// tree depth. Countries not listed fall back to 20 (roughly 1M addresses).
var DefaultDepthForCountry = map[string]int{
	"USA": 22,
	"IND": 24,
	"GBR": 20,
	"CAN": 20,
	"AUS": 18,
}

// DepthFor resolves the configured depth, falling back to the country
// default and then the package default.
func DepthFor(cfg TreeConfig) int {
	if cfg.Depth != 0 {
		return cfg.Depth
	}
	if d, ok := DefaultDepthForCountry[cfg.CountryCode]; ok {
		return d
	}
	return 20
}
