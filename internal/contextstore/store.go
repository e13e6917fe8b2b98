// Package contextstore persists transcripts and analyses in an embedded
// vector database and retrieves them by semantic similarity.
package contextstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"github.com/hotbound-ai/hotbound/internal/config"
	"github.com/hotbound-ai/hotbound/internal/metrics"
)

var (
	// ErrWrite indicates the underlying collection rejected a write or is
	// unreachable. Callers decide whether this blocks their primary response;
	// the recommended policy is log and continue.
	ErrWrite = errors.New("context store write failed")

	// ErrQuery indicates the similarity search backend is unavailable. An
	// empty result set is NOT an error.
	ErrQuery = errors.New("context store query failed")
)

// nowFunc is a variable so tests can pin timestamps.
var nowFunc = time.Now

// Embedder turns text into a vector. The Gemini embedding model is wired in
// production; tests supply a deterministic fake.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Store wraps a single chromem-go collection. chromem persists to disk on
// every write, so there is nothing to flush or tear down; the Store lives for
// the whole process and is safe for concurrent use.
type Store struct {
	collection *chromem.Collection
}

// New opens (or creates) the persistent collection at cfg.Path.
func New(cfg config.StoreConfig, embedder Embedder) (*Store, error) {
	if embedder == nil {
		return nil, errors.New("contextstore: embedder is required")
	}

	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory %s: %w", cfg.Path, err)
	}

	db, err := chromem.NewPersistentDB(cfg.Path, cfg.Compress)
	if err != nil {
		return nil, fmt.Errorf("opening chromem DB: %w", err)
	}

	embedFunc := chromem.EmbeddingFunc(embedder.Embed)
	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, embedFunc)
	if err != nil {
		return nil, fmt.Errorf("opening collection %s: %w", cfg.Collection, err)
	}

	slog.Info("context store opened",
		"path", cfg.Path,
		"collection", cfg.Collection,
		"records", collection.Count(),
	)

	return &Store{collection: collection}, nil
}

// Write appends a record and returns its id. The id embeds the record type
// and timestamp for operator legibility but gets a random suffix so rapid
// successive writes of the same type never overwrite each other.
func (s *Store) Write(ctx context.Context, content string, typ RecordType, metadata map[string]string) (string, error) {
	ts := nowFunc().Unix()
	id := fmt.Sprintf("%s_%d_%s", typ, ts, uuid.NewString())

	md := make(map[string]string, len(metadata)+2)
	for k, v := range metadata {
		md[k] = v
	}
	md["type"] = string(typ)
	md["timestamp"] = strconv.FormatInt(ts, 10)

	err := s.collection.AddDocument(ctx, chromem.Document{
		ID:       id,
		Content:  content,
		Metadata: md,
	})
	if err != nil {
		metrics.StoreWritesTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	metrics.StoreWritesTotal.WithLabelValues("ok").Inc()
	return id, nil
}

// Query performs a similarity search over all stored records regardless of
// type and returns up to n ranked matches. Zero matches yields an empty slice,
// not an error.
func (s *Store) Query(ctx context.Context, query string, n int) ([]QueryResult, error) {
	if n < 1 {
		n = 1
	}

	// chromem rejects nResults greater than the document count.
	count := s.collection.Count()
	if count == 0 {
		return []QueryResult{}, nil
	}
	if n > count {
		n = count
	}

	matches, err := s.collection.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	results := make([]QueryResult, len(matches))
	for i, m := range matches {
		results[i] = QueryResult{
			ID:         m.ID,
			Type:       RecordType(m.Metadata["type"]),
			Content:    m.Content,
			Similarity: m.Similarity,
			Metadata:   m.Metadata,
		}
	}
	return results, nil
}

// ContextFor renders the top-n matches for query as a prompt-ready block.
// Zero matches yields an empty string; grounding degrades gracefully instead
// of aborting the caller's flow.
func (s *Store) ContextFor(ctx context.Context, query string, n int) (string, error) {
	if n < 1 {
		n = 3
	}

	results, err := s.Query(ctx, query, n)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "Type: %s\nContent: %s\n\n", r.Type, r.Content)
	}
	return b.String(), nil
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	return s.collection.Count()
}

// Healthy reports whether the store is usable.
func (s *Store) Healthy() bool {
	return s != nil && s.collection != nil
}
