package mock

import (
	"context"

	"github.com/fwojciec/sitekb"
)

var _ sitekb.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of sitekb.DocumentService.
type DocumentService struct {
	CreateDocumentFn              func(ctx context.Context, doc *sitekb.Document) error
	FindDocumentByIDFn            func(ctx context.Context, id string) (*sitekb.Document, error)
	FindDocumentsFn               func(ctx context.Context, filter sitekb.DocumentFilter) ([]*sitekb.Document, error)
	DeleteDocumentsByCollectionFn func(ctx context.Context, collectionID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitekb.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sitekb.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter sitekb.DocumentFilter) ([]*sitekb.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	return s.DeleteDocumentsByCollectionFn(ctx, collectionID)
}
