// Package inmemory provides a process-local vector store, suitable for small
// corpora and tests. Vectors are held in memory and scanned on every query.
package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/promptops/agentic/pkg/llms"
	"github.com/promptops/agentic/vectorstore"
)

type entry struct {
	doc    vectorstore.Document
	vector []float64
}

// Store is an in-memory vector store backed by an Embedder.
type Store struct {
	embedder       llms.Embedder
	scoreThreshold float64

	mu      sync.RWMutex
	entries []entry
}

var _ vectorstore.Store = (*Store)(nil)

func New(embedder llms.Embedder) (*Store, error) {
	if embedder == nil {
		return nil, errors.New("embedder is required")
	}
	return &Store{
		embedder: embedder,
	}, nil
}

// WithScoreThreshold drops results scoring below the given similarity.
func (s *Store) WithScoreThreshold(threshold float64) *Store {
	s.scoreThreshold = threshold
	return s
}

// AddDocuments embeds and indexes the given documents.
func (s *Store) AddDocuments(ctx context.Context, docs ...vectorstore.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := s.embedder.CreateEmbedding(ctx, texts)
	if err != nil {
		return errors.WithMessage(err, "failed to embed documents")
	}
	if len(vectors) != len(docs) {
		return errors.Newf("embedder returned %d vectors for %d documents", len(vectors), len(docs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range docs {
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		s.entries = append(s.entries, entry{
			doc:    doc,
			vector: toFloat64(vectors[i]),
		})
	}
	return nil
}

// SimilaritySearch returns up to k documents most similar to the query,
// ordered by descending cosine similarity.
func (s *Store) SimilaritySearch(ctx context.Context, query string, k int) ([]vectorstore.ScoredDocument, error) {
	if k <= 0 {
		return nil, errors.New("k must be positive")
	}

	vectors, err := s.embedder.CreateEmbedding(ctx, []string{query})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to embed query")
	}
	if len(vectors) != 1 {
		return nil, errors.Newf("embedder returned %d vectors for query", len(vectors))
	}
	qv := toFloat64(vectors[0])

	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := make([]vectorstore.ScoredDocument, 0, len(s.entries))
	for _, e := range s.entries {
		score, err := cosineSimilarity(qv, e.vector)
		if err != nil {
			return nil, err
		}
		if s.scoreThreshold != 0 && score < s.scoreThreshold {
			continue
		}
		scored = append(scored, vectorstore.ScoredDocument{
			Document: e.doc,
			Score:    score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// Len returns the number of indexed documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.Newf("vector dimensions do not match: %d != %d", len(a), len(b))
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return floats.Dot(a, b) / (na * nb), nil
}

func toFloat64(v []float32) []float64 {
	res := make([]float64, len(v))
	for i, f := range v {
		res[i] = float64(f)
	}
	return res
}
