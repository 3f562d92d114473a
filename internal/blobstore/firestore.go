// Copyright 2025 Shadow Atlas Contributors
//
// Firestore-backed Blob Store
// Firebase Admin SDK client for persisting Merkle snapshot blobs, adapted
// from the corpus's Firestore client idiom: an enabled/disabled toggle so
// local development runs in no-op mode, option.WithCredentialsFile for
// service-account auth, a dedicated logger.

package blobstore

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	gcpfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirestoreConfig configures a FirestoreStore.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
	Collection      string // default "merkleSnapshots"
	Enabled         bool
	Logger          *log.Logger
}

// DefaultFirestoreConfig reads from the environment, matching the corpus's
// convention of FIREBASE_PROJECT_ID / GOOGLE_APPLICATION_CREDENTIALS /
// FIRESTORE_ENABLED.
func DefaultFirestoreConfig() FirestoreConfig {
	return FirestoreConfig{
		ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		Collection:      "merkleSnapshots",
		Enabled:         envBool("FIRESTORE_ENABLED", false),
		Logger:          log.New(os.Stdout, "[blobstore] ", log.LstdFlags),
	}
}

// FirestoreStore persists blobs as Firestore documents keyed by content id.
// A document holds {filename, data (base64), size, storedAt}; Firestore's
// 1MiB document ceiling comfortably fits a Merkle snapshot for any depth up
// to 24 because only the root, metadata, and a compact leaf list are
// serialized, not raw geometry.
type FirestoreStore struct {
	app        *firebase.App
	client     *gcpfirestore.Client
	collection string
	enabled    bool
	logger     *log.Logger
}

// NewFirestoreStore connects to Firestore, or returns a no-op store if
// cfg.Enabled is false (useful for local development, matching the
// corpus's DISABLED no-op mode).
func NewFirestoreStore(ctx context.Context, cfg FirestoreConfig) (*FirestoreStore, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stdout, "[blobstore] ", log.LstdFlags)
	}
	if cfg.Collection == "" {
		cfg.Collection = "merkleSnapshots"
	}

	s := &FirestoreStore{collection: cfg.Collection, enabled: cfg.Enabled, logger: cfg.Logger}
	if !cfg.Enabled {
		cfg.Logger.Println("firestore blob store disabled - running in no-op mode")
		return s, nil
	}

	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("blobstore: FIREBASE_PROJECT_ID is required when Firestore is enabled")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("blobstore: initialize firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("blobstore: create firestore client: %w", err)
	}

	s.app = app
	s.client = client
	cfg.Logger.Printf("firestore blob store initialized for project: %s", cfg.ProjectID)
	return s, nil
}

// Close releases the underlying Firestore client.
func (s *FirestoreStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Put stores data under its content id. In no-op mode it still computes and
// returns a valid content id without persisting anything, so callers can
// exercise the full pipeline locally.
func (s *FirestoreStore) Put(ctx context.Context, data []byte, hintedFilename string) (string, error) {
	id := ContentID(data)
	if !s.enabled {
		s.logger.Printf("firestore disabled - skipping blob put for %s (%d bytes)", id, len(data))
		return id, nil
	}
	if s.client == nil {
		return "", ErrPutFailed{Size: len(data), Err: fmt.Errorf("firestore client not initialized")}
	}

	doc := map[string]any{
		"filename": hintedFilename,
		"data":     base64.StdEncoding.EncodeToString(data),
		"size":     len(data),
		"storedAt": time.Now().UTC(),
	}
	if _, err := s.client.Collection(s.collection).Doc(id).Set(ctx, doc); err != nil {
		return "", ErrPutFailed{Size: len(data), Err: err}
	}
	return id, nil
}

// Get retrieves and decodes a blob by content id.
func (s *FirestoreStore) Get(ctx context.Context, contentID string) ([]byte, error) {
	if !s.enabled || s.client == nil {
		return nil, ErrNotFound{ContentID: contentID}
	}

	snap, err := s.client.Collection(s.collection).Doc(contentID).Get(ctx)
	if err != nil {
		return nil, ErrNotFound{ContentID: contentID}
	}
	encoded, ok := snap.Data()["data"].(string)
	if !ok {
		return nil, fmt.Errorf("blobstore: document %s missing data field", contentID)
	}
	return base64.StdEncoding.DecodeString(encoded)
}

func envBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val == "true" || val == "1" || val == "yes"
}
