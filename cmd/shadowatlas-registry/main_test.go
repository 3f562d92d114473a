// Copyright 2025 Shadow Atlas Contributors

package main

import (
	"context"
	"testing"

	"github.com/shadowatlas/registry/internal/config"
)

func TestRun_WiresConfigThroughToPublishedSnapshot(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.ProvenanceBaseDir = t.TempDir()

	contentID, err := run(context.Background(), cfg, "17031", "verifier-test")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if contentID == "" {
		t.Fatal("expected a non-empty content id")
	}
}

func TestRun_RejectsUnknownDepth(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.ProvenanceBaseDir = t.TempDir()
	cfg.Depth = 19

	if _, err := run(context.Background(), cfg, "17031", ""); err == nil {
		t.Fatal("expected an error for an unsupported tree depth")
	}
}
