package mock

import (
	"context"

	"github.com/fwojciec/sitekb"
)

var _ sitekb.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of sitekb.CollectionService.
type CollectionService struct {
	CreateCollectionFn   func(ctx context.Context, collection *sitekb.Collection) error
	FindCollectionByIDFn func(ctx context.Context, id string) (*sitekb.Collection, error)
	FindCollectionsFn    func(ctx context.Context, filter sitekb.CollectionFilter) ([]*sitekb.Collection, error)
	DeleteCollectionFn   func(ctx context.Context, id string) error
}

func (s *CollectionService) CreateCollection(ctx context.Context, collection *sitekb.Collection) error {
	return s.CreateCollectionFn(ctx, collection)
}

func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*sitekb.Collection, error) {
	return s.FindCollectionByIDFn(ctx, id)
}

func (s *CollectionService) FindCollections(ctx context.Context, filter sitekb.CollectionFilter) ([]*sitekb.Collection, error) {
	return s.FindCollectionsFn(ctx, filter)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollectionFn(ctx, id)
}
