package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitekb"
	"github.com/fwojciec/sitekb/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCollection(t *testing.T, db *sqlite.DB) *sitekb.Collection {
	t.Helper()
	svc := sqlite.NewCollectionService(db)
	collection := &sitekb.Collection{
		Name:     "test-collection",
		SeedURLs: []string{"https://example.com/docs"},
	}
	require.NoError(t, svc.CreateCollection(context.Background(), collection))
	return collection
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID and content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &sitekb.Document{
			CollectionID: collection.ID,
			SourceURL:    "https://example.com/docs/a",
			Content:      "extracted text",
		}

		err := svc.CreateDocument(ctx, doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "content hash should be computed")
		assert.False(t, doc.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("keeps caller-provided content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &sitekb.Document{
			CollectionID: collection.ID,
			SourceURL:    "https://example.com/docs/a",
			Content:      "extracted text",
			ContentHash:  "precomputed",
		}

		require.NoError(t, svc.CreateDocument(ctx, doc))
		assert.Equal(t, "precomputed", doc.ContentHash)
	})

	t.Run("identical content produces identical hashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		d1 := &sitekb.Document{CollectionID: collection.ID, SourceURL: "https://example.com/a", Content: "same"}
		d2 := &sitekb.Document{CollectionID: collection.ID, SourceURL: "https://example.com/b", Content: "same"}
		require.NoError(t, svc.CreateDocument(ctx, d1))
		require.NoError(t, svc.CreateDocument(ctx, d2))

		assert.Equal(t, d1.ContentHash, d2.ContentHash)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &sitekb.Document{} // missing required fields

		err := svc.CreateDocument(ctx, doc)
		require.Error(t, err)
		assert.Equal(t, sitekb.EINVALID, sitekb.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns document when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &sitekb.Document{
			CollectionID: collection.ID,
			SourceURL:    "https://example.com/docs/a",
			Content:      "extracted text",
			Language:     "en",
			Position:     3,
		}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		found, err := svc.FindDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, doc.CollectionID, found.CollectionID)
		assert.Equal(t, doc.SourceURL, found.SourceURL)
		assert.Equal(t, doc.Content, found.Content)
		assert.Equal(t, "en", found.Language)
		assert.Equal(t, 3, found.Position)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		_, err := svc.FindDocumentByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, sitekb.ENOTFOUND, sitekb.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by collection ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collections := sqlite.NewCollectionService(db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		c1 := &sitekb.Collection{Name: "one", SeedURLs: []string{"https://one.com"}}
		c2 := &sitekb.Collection{Name: "two", SeedURLs: []string{"https://two.com"}}
		require.NoError(t, collections.CreateCollection(ctx, c1))
		require.NoError(t, collections.CreateCollection(ctx, c2))

		require.NoError(t, svc.CreateDocument(ctx, &sitekb.Document{CollectionID: c1.ID, SourceURL: "https://one.com/a"}))
		require.NoError(t, svc.CreateDocument(ctx, &sitekb.Document{CollectionID: c1.ID, SourceURL: "https://one.com/b"}))
		require.NoError(t, svc.CreateDocument(ctx, &sitekb.Document{CollectionID: c2.ID, SourceURL: "https://two.com/a"}))

		docs, err := svc.FindDocuments(ctx, sitekb.DocumentFilter{CollectionID: &c1.ID})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("sorts by position when requested", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for _, pos := range []int{2, 0, 1} {
			doc := &sitekb.Document{
				CollectionID: collection.ID,
				SourceURL:    "https://example.com/docs/" + string(rune('a'+pos)),
				Position:     pos,
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, sitekb.DocumentFilter{
			CollectionID: &collection.ID,
			SortBy:       sitekb.SortByPosition,
		})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, 0, docs[0].Position)
		assert.Equal(t, 1, docs[1].Position)
		assert.Equal(t, 2, docs[2].Position)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, &sitekb.Document{CollectionID: collection.ID, SourceURL: "https://example.com/a"}))
		require.NoError(t, svc.CreateDocument(ctx, &sitekb.Document{CollectionID: collection.ID, SourceURL: "https://example.com/b"}))

		sourceURL := "https://example.com/b"
		docs, err := svc.FindDocuments(ctx, sitekb.DocumentFilter{SourceURL: &sourceURL})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, sourceURL, docs[0].SourceURL)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			doc := &sitekb.Document{
				CollectionID: collection.ID,
				SourceURL:    "https://example.com/docs/" + string(rune('a'+i)),
				Position:     i,
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, sitekb.DocumentFilter{Limit: 2, Offset: 1, SortBy: sitekb.SortByPosition})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, 1, docs[0].Position)
	})
}

func TestDocumentService_DeleteDocumentsByCollection(t *testing.T) {
	t.Parallel()

	t.Run("removes all documents for a collection", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collections := sqlite.NewCollectionService(db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		c1 := &sitekb.Collection{Name: "one", SeedURLs: []string{"https://one.com"}}
		c2 := &sitekb.Collection{Name: "two", SeedURLs: []string{"https://two.com"}}
		require.NoError(t, collections.CreateCollection(ctx, c1))
		require.NoError(t, collections.CreateCollection(ctx, c2))

		require.NoError(t, svc.CreateDocument(ctx, &sitekb.Document{CollectionID: c1.ID, SourceURL: "https://one.com/a"}))
		require.NoError(t, svc.CreateDocument(ctx, &sitekb.Document{CollectionID: c2.ID, SourceURL: "https://two.com/a"}))

		require.NoError(t, svc.DeleteDocumentsByCollection(ctx, c1.ID))

		gone, err := svc.FindDocuments(ctx, sitekb.DocumentFilter{CollectionID: &c1.ID})
		require.NoError(t, err)
		assert.Empty(t, gone)

		kept, err := svc.FindDocuments(ctx, sitekb.DocumentFilter{CollectionID: &c2.ID})
		require.NoError(t, err)
		assert.Len(t, kept, 1)
	})

	t.Run("is a no-op for unknown collection", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		err := svc.DeleteDocumentsByCollection(ctx, "nonexistent-id")
		require.NoError(t, err)
	})
}
