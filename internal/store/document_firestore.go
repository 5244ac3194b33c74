// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/logger"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreDocumentStore implements [DocumentStore] on Cloud Firestore.
type FirestoreDocumentStore struct {
	client *firestore.Client
	logger *logger.Logger
}

// NewFirestoreDocumentStore connects to the Firestore project described by
// cfg. Credentials are taken from the credentials file when set, otherwise
// from the discrete service-account fields, otherwise from the environment
// (Application Default Credentials).
func NewFirestoreDocumentStore(ctx context.Context, cfg config.Firebase, log *logger.Logger) (*FirestoreDocumentStore, error) {
	opts, err := firestoreClientOptions(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewFirestoreDocumentStore").Msg("error building firestore credentials")
		return nil, err
	}

	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewFirestoreDocumentStore").Msg("error connecting to firestore")
		return nil, fmt.Errorf("error connecting to firestore: %w", err)
	}
	log.Info().Str("func", "NewFirestoreDocumentStore").Str("project_id", cfg.ProjectID).Msg("connected to firestore successfully")

	return &FirestoreDocumentStore{
		client: client,
		logger: log,
	}, nil
}

func firestoreClientOptions(cfg config.Firebase) ([]option.ClientOption, error) {
	if cfg.CredentialsPath != "" {
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}, nil
	}

	if !cfg.HasDiscreteCredentials() {
		return nil, nil
	}

	credentials, err := serviceAccountJSON(cfg)
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithCredentialsJSON(credentials)}, nil
}

// serviceAccountJSON assembles a service-account key file from the discrete
// settings. Escaped newlines in the private key are restored.
func serviceAccountJSON(cfg config.Firebase) ([]byte, error) {
	key := map[string]string{
		"type":           "service_account",
		"project_id":     cfg.ProjectID,
		"private_key_id": cfg.PrivateKeyID,
		"private_key":    strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
		"client_email":   cfg.ClientEmail,
		"client_id":      cfg.ClientID,
		"auth_uri":       cfg.AuthURI,
		"token_uri":      cfg.TokenURI,
	}

	raw, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("error encoding service account: %w", err)
	}
	return raw, nil
}

// NewID returns a Firestore auto-generated identifier.
func (s *FirestoreDocumentStore) NewID(collection Collection) string {
	return s.client.Collection(string(collection)).NewDoc().ID
}

func (s *FirestoreDocumentStore) Get(ctx context.Context, ref DocumentRef) (Document, error) {
	snap, err := s.client.Doc(ref.Path()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return Document{}, ErrDocumentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*FirestoreDocumentStore.Get").Str("path", ref.Path()).Msg("error reading document")
		return Document{}, fmt.Errorf("error reading document %s: %w", ref.Path(), err)
	}

	return snapshotDocument(snap)
}

func (s *FirestoreDocumentStore) Set(ctx context.Context, ref DocumentRef, fields map[string]any) error {
	if _, err := s.client.Doc(ref.Path()).Set(ctx, fields); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*FirestoreDocumentStore.Set").Str("path", ref.Path()).Msg("error writing document")
		return fmt.Errorf("error writing document %s: %w", ref.Path(), err)
	}
	return nil
}

func (s *FirestoreDocumentStore) Merge(ctx context.Context, ref DocumentRef, fields map[string]any) error {
	if _, err := s.client.Doc(ref.Path()).Set(ctx, fields, firestore.MergeAll); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*FirestoreDocumentStore.Merge").Str("path", ref.Path()).Msg("error merging document")
		return fmt.Errorf("error merging document %s: %w", ref.Path(), err)
	}
	return nil
}

func (s *FirestoreDocumentStore) Update(ctx context.Context, ref DocumentRef, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	if _, err := s.client.Doc(ref.Path()).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return ErrDocumentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*FirestoreDocumentStore.Update").Str("path", ref.Path()).Msg("error updating document")
		return fmt.Errorf("error updating document %s: %w", ref.Path(), err)
	}
	return nil
}

func (s *FirestoreDocumentStore) Query(ctx context.Context, q Query) ([]Document, error) {
	log := logger.FromContext(ctx)

	if err := validateQuery(q); err != nil {
		return nil, err
	}

	query := s.client.Collection(string(q.Collection)).Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, string(f.Op), f.Value)
	}
	if q.OrderBy != "" {
		direction := firestore.Asc
		if q.Direction == Descending {
			direction = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, direction)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	docs := make([]Document, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			log.Err(err).Str("func", "*FirestoreDocumentStore.Query").Str("collection", string(q.Collection)).Msg("error iterating documents")
			return nil, fmt.Errorf("error querying %s: %w", q.Collection, err)
		}

		doc, err := snapshotDocument(snap)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (s *FirestoreDocumentStore) Close() error {
	return s.client.Close()
}

// snapshotDocument converts a snapshot into a Document, passing the fields
// through JSON so numbers get the same types as the SQL backend.
func snapshotDocument(snap *firestore.DocumentSnapshot) (Document, error) {
	raw, err := json.Marshal(snap.Data())
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	return Document{ID: snap.Ref.ID, Data: fields}, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
