// Copyright 2025 Shadow Atlas Contributors
//
// Shadow Atlas registry composition root. Wires configuration, the
// authority registry, the provenance log, and the Merkle commitment
// engine together and runs one publish cycle. There is no HTTP server
// (non-goal); this binary exists to demonstrate the wiring, the same way
// cmd/bls-zk-setup wraps one library call rather than standing up a
// service.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shadowatlas/registry/internal/authority"
	"github.com/shadowatlas/registry/internal/blobstore"
	"github.com/shadowatlas/registry/internal/boundary"
	"github.com/shadowatlas/registry/internal/clock"
	"github.com/shadowatlas/registry/internal/config"
	"github.com/shadowatlas/registry/internal/hashoracle"
	"github.com/shadowatlas/registry/internal/merkle"
	"github.com/shadowatlas/registry/internal/metrics"
	"github.com/shadowatlas/registry/internal/provenance"
	"github.com/shadowatlas/registry/internal/snapshot"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("starting Shadow Atlas registry")

	var (
		fips             = flag.String("fips", "17031", "FIPS code of the district to commit")
		verifierContract = flag.String("verifier-contract", "", "downstream verifier contract identifier recorded in the snapshot metadata")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	contentID, err := run(context.Background(), cfg, *fips, *verifierContract)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("[snapshot] published district=%s contentId=%s", *fips, contentID)
}

// run wires config, the authority registry, the provenance log, and the
// Merkle commitment engine through one publish cycle, returning the
// content id of the published snapshot. Factored out of main so the
// wiring can be exercised directly by an integration test.
func run(ctx context.Context, cfg *config.Config, fips, verifierContract string) (string, error) {
	log.Printf("[config] depth=%d batchSize=%d countryCode=%s provenanceBaseDir=%s", cfg.Depth, cfg.BatchSize, cfg.CountryCode, cfg.ProvenanceBaseDir)

	metricsRegistry := metrics.NewRegistry()

	authorityRegistry := authority.Default()
	if _, err := authorityRegistry.GetAuthority(boundary.KindStateLower); err != nil {
		return "", fmt.Errorf("[authority] static table missing expected entry: %w", err)
	}
	log.Printf("[authority] static table loaded")

	sysClock := clock.System{}
	provenanceStore := provenance.New(provenance.Config{
		BaseDir:     cfg.ProvenanceBaseDir,
		StagingMode: cfg.StagingMode,
		Clock:       sysClock,
		Logger:      log.New(log.Writer(), "[provenance] ", log.LstdFlags),
		Metrics:     metricsRegistry,
	})

	agentID := "shadowatlas-registry-cli"
	record := boundary.ProvenanceRecord{
		FIPS:            fips,
		GranularityTier: 1,
		Confidence:      90,
		AuthorityLevel:  1,
		SourceKind:      string(boundary.SourceTypePrimary),
		Why:             []string{"manual invocation of the registry cli"},
		Tried:           []int{1},
		Timestamp:       sysClock.Now().Format(time.RFC3339),
		AgentID:         agentID,
	}
	if err := provenanceStore.AppendDiscovery(ctx, agentID, record); err != nil {
		return "", fmt.Errorf("[provenance] append discovery record: %w", err)
	}
	log.Printf("[provenance] appended discovery record for fips=%s", fips)

	oracle := hashoracle.Singleton()
	treeCfg := boundary.TreeConfig{Depth: cfg.Depth, BatchSize: cfg.BatchSize, CountryCode: cfg.CountryCode}

	inputs := sampleLeafInputs(fips)
	buildStart := sysClock.Now()
	tree, err := merkle.BuildTree(ctx, treeCfg, inputs, oracle)
	if err != nil {
		return "", fmt.Errorf("[merkle] build tree for fips=%s: %w", fips, err)
	}
	metricsRegistry.ObserveMerkleBuild(tree.Depth(), sysClock.Now().Sub(buildStart))
	log.Printf("[merkle] committed %d addresses at depth %d, root=%x", tree.AddressCount(), tree.Depth(), tree.Root().Bytes())

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("[blobstore] initialize: %w", err)
	}

	snapshotService := snapshot.NewService(blobs, sysClock)
	contentID, err := snapshotService.PublishTree(ctx, tree, verifierContract, fmt.Sprintf("district-%s.json", fips))
	if err != nil {
		return "", fmt.Errorf("[snapshot] publish tree: %w", err)
	}
	return contentID, nil
}

// sampleLeafInputs builds a small address set so the wiring above has
// something concrete to commit. A real invocation sources these from the
// tessellated geometry pipeline, which is out of scope here.
func sampleLeafInputs(fips string) []boundary.MerkleLeafInput {
	inputs := make([]boundary.MerkleLeafInput, 0, 4)
	for i := 0; i < 4; i++ {
		inputs = append(inputs, boundary.MerkleLeafInput{
			ID:             fmt.Sprintf("%s-addr-%d", fips, i),
			BoundaryKind:   boundary.KindStateLower,
			GeometryHash:   fmt.Sprintf("%064x", i+1),
			AuthorityLevel: 1,
		})
	}
	return inputs
}

// newBlobStore picks the Firestore-backed store when configured, falling
// back to the in-memory store otherwise (local development, tests).
func newBlobStore(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	if !cfg.FirestoreEnabled {
		log.Printf("[blobstore] Firestore disabled, using in-memory store")
		return blobstore.NewMemoryStore(), nil
	}
	return blobstore.NewFirestoreStore(ctx, blobstore.FirestoreConfig{
		ProjectID:       cfg.FirebaseProjectID,
		CredentialsFile: cfg.FirebaseCredentialsFile,
		Enabled:         true,
		Logger:          log.New(log.Writer(), "[blobstore] ", log.LstdFlags),
	})
}
