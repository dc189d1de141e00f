package sitekb

import (
	"context"
	"time"
)

// Collection represents a named knowledge base built from one or more seed
// URLs. It records the crawl options so the collection can be rebuilt.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SeedURLs    []string  `json:"seedUrls"`
	Recursive   bool      `json:"recursive"`
	TranslateTo string    `json:"translateTo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the collection contains invalid fields.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "collection name required")
	}
	if len(c.SeedURLs) == 0 {
		return Errorf(EINVALID, "collection requires at least one seed URL")
	}
	return nil
}

// CrawlRequest returns the crawl request equivalent to the collection's
// stored options.
func (c *Collection) CrawlRequest() CrawlRequest {
	return CrawlRequest{
		SeedURLs:    c.SeedURLs,
		Recursive:   c.Recursive,
		TranslateTo: c.TranslateTo,
	}
}

// CollectionService represents a service for managing collections.
type CollectionService interface {
	// CreateCollection creates a new collection.
	// Returns ECONFLICT if a collection with the same name exists.
	CreateCollection(ctx context.Context, collection *Collection) error

	// FindCollectionByID retrieves a collection by ID.
	// Returns ENOTFOUND if collection does not exist.
	FindCollectionByID(ctx context.Context, id string) (*Collection, error)

	// FindCollections retrieves collections matching the filter.
	FindCollections(ctx context.Context, filter CollectionFilter) ([]*Collection, error)

	// DeleteCollection permanently removes a collection and all its documents.
	// Returns ENOTFOUND if collection does not exist.
	DeleteCollection(ctx context.Context, id string) error
}

// CollectionFilter represents a filter for FindCollections.
type CollectionFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
