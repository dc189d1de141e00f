package sitekb

import (
	"context"
	"time"
)

// Document is the normalized unit of crawled content: the extracted page
// text plus source metadata. Documents are produced by the crawler and
// handed to storage for downstream indexing.
type Document struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collectionId"`
	SourceURL    string    `json:"sourceUrl"`
	Content      string    `json:"content"`
	ContentHash  string    `json:"contentHash"`
	Language     string    `json:"language"` // translation target, empty if untranslated
	Position     int       `json:"position"`
	FetchedAt    time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.CollectionID == "" {
		return Errorf(EINVALID, "document collection ID required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocumentsByCollection removes all documents for a collection.
	DeleteDocumentsByCollection(ctx context.Context, collectionID string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByPosition  SortOrder = "position"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID           *string `json:"id"`
	CollectionID *string `json:"collectionId"`
	SourceURL    *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
