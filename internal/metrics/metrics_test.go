// Copyright 2025 Shadow Atlas Contributors

package metrics

import (
	"testing"
	"time"
)

func TestNewRegistry_MetricsAreRegistered(t *testing.T) {
	reg := NewRegistry()

	reg.ProvenanceAppends.WithLabelValues("compressed", "ok").Inc()
	reg.ObserveLockWait(50 * time.Millisecond)
	reg.ObserveMerkleBuild(18, 200*time.Millisecond)

	families, err := reg.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}

	for _, want := range []string{
		"shadowatlas_provenance_appends_total",
		"shadowatlas_provenance_lock_wait_seconds",
		"shadowatlas_merkle_build_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("expected metric family %s to be registered", want)
		}
	}
}

func TestDepthLabel_UnknownDepthFallsBack(t *testing.T) {
	if got := depthLabel(19); got != "unknown" {
		t.Errorf("depthLabel(19) = %q, want %q", got, "unknown")
	}
}
