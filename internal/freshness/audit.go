// Copyright 2025 Shadow Atlas Contributors

package freshness

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/shadowatlas/registry/internal/boundary"
)

// Alert is emitted for every jurisdiction whose recommendation is not
// use-tiger, during a freshness audit (§4.C).
type Alert struct {
	Kind         boundary.Kind
	Jurisdiction string
	Comparison   Comparison
}

// AlertHandler receives freshness alerts. The audit injects its handler
// list explicitly (§9 "Global mutable state": no package-level singleton).
type AlertHandler interface {
	HandleAlert(ctx context.Context, alert Alert) error
}

// JurisdictionSource resolves the (primary, aggregator) URL pair to probe
// for one jurisdiction under a given boundary kind.
type JurisdictionSource struct {
	Jurisdiction           string
	PrimaryURL             string
	PrimaryMachineReadable bool
	AggregatorURL          string
}

// Auditor runs batched freshness audits across jurisdictions.
type Auditor struct {
	comparator  *Comparator
	handlers    []AlertHandler
	concurrency int
	logger      *log.Logger
}

// NewAuditor builds an Auditor. handlers are invoked sequentially for each
// alert; concurrency bounds how many jurisdictions are probed at once.
func NewAuditor(comparator *Comparator, handlers []AlertHandler, concurrency int, logger *log.Logger) *Auditor {
	if logger == nil {
		logger = log.New(log.Writer(), "[freshness] ", log.LstdFlags)
	}
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Auditor{comparator: comparator, handlers: handlers, concurrency: concurrency, logger: logger}
}

// jurisdictionResult pairs a jurisdiction with its comparison outcome.
type jurisdictionResult struct {
	jurisdiction string
	comparison   Comparison
}

// RunFreshnessAudit batches all given jurisdictions for kind, probing them
// concurrently (bounded by a.concurrency), and for every comparison whose
// recommendation is not use-tiger, invokes every registered handler in
// order. A handler failure is logged and does not prevent the remaining
// handlers, or the remaining alerts, from running.
func (a *Auditor) RunFreshnessAudit(ctx context.Context, kind boundary.Kind, sources []JurisdictionSource) ([]Comparison, error) {
	results := make([]jurisdictionResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			cmp, err := a.comparator.Compare(gctx, src.PrimaryURL, src.PrimaryMachineReadable, src.AggregatorURL)
			if err != nil {
				return fmt.Errorf("freshness: audit probe for %s/%s: %w", kind, src.Jurisdiction, err)
			}
			results[i] = jurisdictionResult{jurisdiction: src.Jurisdiction, comparison: cmp}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparisons := make([]Comparison, len(results))
	for i, r := range results {
		comparisons[i] = r.comparison
		if r.comparison.Recommendation == RecommendUseTiger {
			continue
		}
		alert := Alert{Kind: kind, Jurisdiction: r.jurisdiction, Comparison: r.comparison}
		a.dispatch(ctx, alert)
	}
	return comparisons, nil
}

// dispatch invokes every handler in order, isolating each call so a
// throwing (panicking or erroring) handler never stops the next one.
func (a *Auditor) dispatch(ctx context.Context, alert Alert) {
	for _, h := range a.handlers {
		a.invokeOne(ctx, h, alert)
	}
}

func (a *Auditor) invokeOne(ctx context.Context, h AlertHandler, alert Alert) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Printf("alert handler panicked for %s/%s: %v", alert.Kind, alert.Jurisdiction, r)
		}
	}()
	if err := h.HandleAlert(ctx, alert); err != nil {
		a.logger.Printf("alert handler failed for %s/%s: %v", alert.Kind, alert.Jurisdiction, err)
	}
}
