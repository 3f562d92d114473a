// Copyright 2025 Shadow Atlas Contributors

package config

import "testing"

func TestLoad_DefaultsAreValid(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate_RejectsUnknownDepth(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	cfg.Depth = 19
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for depth 19, got nil")
	}
}

func TestValidate_RejectsNonPositiveBatchSize(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	cfg.BatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero batchSize, got nil")
	}
}

func TestValidate_RequiresFirebaseProjectIDWhenEnabled(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	cfg.FirestoreEnabled = true
	cfg.FirebaseProjectID = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when Firestore enabled without project id, got nil")
	}
}
