// Package vectorstore defines storage and similarity search over embedded
// documents, used for retrieval augmented generation.
package vectorstore

import (
	"context"

	"github.com/effective-security/x/values"
)

//go:generate mockgen -source=vectorstore.go -destination=../mocks/mockvectorstore/vectorstore_mock.gen.go -package mockvectorstore

// Document is a unit of retrievable content.
type Document struct {
	ID       string        `json:"id" yaml:"id"`
	Content  string        `json:"content" yaml:"content"`
	Metadata values.MapAny `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ScoredDocument is a document with its similarity to a query,
// in the range [-1, 1] where 1 is most similar.
type ScoredDocument struct {
	Document
	Score float64 `json:"score" yaml:"score"`
}

// Store indexes documents and answers similarity queries.
type Store interface {
	// AddDocuments embeds and indexes the given documents.
	// Documents without an ID are assigned one.
	AddDocuments(ctx context.Context, docs ...Document) error
	// SimilaritySearch returns up to k documents most similar to the query,
	// ordered by descending score.
	SimilaritySearch(ctx context.Context, query string, k int) ([]ScoredDocument, error)
}
