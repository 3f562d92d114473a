// Copyright 2025 Shadow Atlas Contributors
//
// Primary-vs-Aggregator Comparator (spec §4.C). Issues HEAD-style metadata
// probes only; a Prober seam keeps the real network transport out of this
// package's tests, the same way the teacher's attestation strategies take
// an injected signer rather than embedding key material directly
// (pkg/attestation/strategy/interface.go).

package freshness

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shadowatlas/registry/internal/metrics"
)

// ProbeResult is what a HEAD-style metadata probe discovers about a URL.
type ProbeResult struct {
	Available    bool
	LastModified *time.Time
	ETag         string
	ByteLength   int64
}

// Prober issues one metadata probe. Real implementations use
// http.MethodHead; tests substitute a stub.
type Prober interface {
	Probe(ctx context.Context, url string) (ProbeResult, error)
}

// Config bounds one probe's retry behavior (spec §4.C / §6).
type Config struct {
	Timeout     time.Duration // default 5s
	MaxRetries  int           // default 3
	InitialBackoff time.Duration // default 1s, factor x2
}

// DefaultConfig matches spec §6's configuration defaults.
func DefaultConfig() Config {
	return Config{Timeout: 5 * time.Second, MaxRetries: 3, InitialBackoff: time.Second}
}

// Result is a TigerComparison (spec §4.C decision table).
type Result string

const (
	ResultTigerFresh Result = "tiger-fresh"
	ResultTigerStale Result = "tiger-stale"
	ResultUnknown    Result = "unknown"
)

// Recommendation is the action a caller should take given a Comparison.
type Recommendation string

const (
	RecommendUseTiger     Recommendation = "use-tiger"
	RecommendUsePrimary   Recommendation = "use-primary"
	RecommendManualReview Recommendation = "manual-review"
)

// Comparison is the outcome of comparing one primary/aggregator pair.
type Comparison struct {
	Result         Result
	Recommendation Recommendation
	LagDays        int
	Warning        string
}

// Comparator runs the freshness comparison against two probes concurrently.
type Comparator struct {
	prober  Prober
	cfg     Config
	metrics *metrics.Registry
}

// New builds a Comparator around the given Prober and config.
func New(prober Prober, cfg Config) *Comparator {
	return &Comparator{prober: prober, cfg: cfg}
}

// WithMetrics attaches a metrics registry; probe and recommendation counts
// are recorded against it. Returns c for chaining at construction time.
func (c *Comparator) WithMetrics(m *metrics.Registry) *Comparator {
	c.metrics = m
	return c
}

// Compare probes the primary and aggregator URLs concurrently, joins the
// results, and applies the decision table in §4.C.
func (c *Comparator) Compare(ctx context.Context, primaryURL string, primaryMachineReadable bool, aggregatorURL string) (Comparison, error) {
	var primary, aggregator probeOutcome

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := c.probeWithRetry(gctx, primaryURL)
		primary = probeOutcome{result: res, err: err}
		return nil // a probe failure is data, not a fatal error for the join
	})
	g.Go(func() error {
		res, err := c.probeWithRetry(gctx, aggregatorURL)
		aggregator = probeOutcome{result: res, err: err}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}

	cmp := decide(primary, primaryMachineReadable, aggregator)
	if c.metrics != nil {
		c.metrics.FreshnessProbes.WithLabelValues("primary", probeOutcomeLabel(primary)).Inc()
		c.metrics.FreshnessProbes.WithLabelValues("aggregator", probeOutcomeLabel(aggregator)).Inc()
		c.metrics.FreshnessRecommend.WithLabelValues(string(cmp.Recommendation)).Inc()
	}
	return cmp, nil
}

func probeOutcomeLabel(o probeOutcome) string {
	if o.available() {
		return "available"
	}
	return "unavailable"
}

type probeOutcome struct {
	result ProbeResult
	err    error
}

func (o probeOutcome) available() bool {
	return o.err == nil && o.result.Available
}

func decide(primary probeOutcome, primaryMachineReadable bool, aggregator probeOutcome) Comparison {
	if !primary.available() || !primaryMachineReadable {
		return Comparison{Result: ResultTigerFresh, Recommendation: RecommendUseTiger, Warning: "primary source unavailable or not machine-readable"}
	}
	if !aggregator.available() {
		return Comparison{Result: ResultTigerStale, Recommendation: RecommendUsePrimary, Warning: "aggregator source unavailable"}
	}
	if primary.result.LastModified == nil || aggregator.result.LastModified == nil {
		return Comparison{Result: ResultUnknown, Recommendation: RecommendManualReview, Warning: "last-modified metadata missing on one or both sides"}
	}
	if primary.result.LastModified.After(*aggregator.result.LastModified) {
		lag := int(primary.result.LastModified.Sub(*aggregator.result.LastModified).Hours() / 24)
		return Comparison{Result: ResultTigerStale, Recommendation: RecommendUsePrimary, LagDays: lag}
	}
	return Comparison{Result: ResultTigerFresh, Recommendation: RecommendUseTiger}
}

// probeWithRetry retries a single probe up to cfg.MaxRetries times with
// exponential backoff (initial 1s, factor x2), each attempt bounded by
// cfg.Timeout.
func (c *Comparator) probeWithRetry(ctx context.Context, url string) (ProbeResult, error) {
	backoff := c.cfg.InitialBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	maxRetries := c.cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		res, err := c.prober.Probe(attemptCtx, url)
		cancel()
		if err == nil {
			return res, nil
		}
		lastErr = err
		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ProbeResult{}, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return ProbeResult{Available: false}, fmt.Errorf("freshness: probe %q exhausted retries: %w", url, lastErr)
}
