package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/sitekb"
	main "github.com/fwojciec/sitekb/cmd/sitekb"
	"github.com/fwojciec/sitekb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	collectionByName := func(name string) *mock.CollectionService {
		return &mock.CollectionService{
			FindCollectionsFn: func(_ context.Context, filter sitekb.CollectionFilter) ([]*sitekb.Collection, error) {
				if filter.Name != nil && *filter.Name == name {
					return []*sitekb.Collection{{ID: "col-123", Name: name}}, nil
				}
				return nil, nil
			},
		}
	}

	t.Run("lists documents in position order", func(t *testing.T) {
		t.Parallel()

		var gotSortBy sitekb.SortOrder
		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter sitekb.DocumentFilter) ([]*sitekb.Document, error) {
				gotSortBy = filter.SortBy
				return []*sitekb.Document{
					{SourceURL: "https://example.com/docs/a", Position: 0},
					{SourceURL: "https://example.com/docs/b", Position: 1},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Collections: collectionByName("docs"),
			Documents:   documents,
		}

		cmd := &main.DocsCmd{Name: "docs"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, sitekb.SortByPosition, gotSortBy)
		output := stdout.String()
		assert.Contains(t, output, "2 total")
		assert.Contains(t, output, "https://example.com/docs/a")
		assert.Contains(t, output, "https://example.com/docs/b")
	})

	t.Run("prints full content with --full", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ sitekb.DocumentFilter) ([]*sitekb.Document, error) {
				return []*sitekb.Document{
					{SourceURL: "https://example.com/docs/a", Content: "page a content"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Collections: collectionByName("docs"),
			Documents:   documents,
		}

		cmd := &main.DocsCmd{Name: "docs", Full: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "page a content")
	})

	t.Run("returns ENOTFOUND for unknown collection", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Collections: collectionByName("docs"),
		}

		cmd := &main.DocsCmd{Name: "missing"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitekb.ENOTFOUND, sitekb.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when collection has no documents", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ sitekb.DocumentFilter) ([]*sitekb.Document, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Collections: collectionByName("docs"),
			Documents:   documents,
		}

		cmd := &main.DocsCmd{Name: "docs"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitekb.ENOTFOUND, sitekb.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no documents")
	})
}
