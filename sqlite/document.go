package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitekb"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitekb.DocumentService = (*DocumentService)(nil)

// DocumentService implements sitekb.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document. The content hash is computed when
// the caller has not set one.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitekb.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}
	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, collection_id, source_url, content, content_hash, language, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.CollectionID, doc.SourceURL, doc.Content, doc.ContentHash, doc.Language,
		doc.Position, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sitekb.Document, error) {
	var doc sitekb.Document
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, collection_id, source_url, content, content_hash, language, position, fetched_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.CollectionID, &doc.SourceURL, &doc.Content, &doc.ContentHash,
		&doc.Language, &doc.Position, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, sitekb.Errorf(sitekb.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter sitekb.DocumentFilter) ([]*sitekb.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, collection_id, source_url, content, content_hash, language, position, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case sitekb.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*sitekb.Document
	for rows.Next() {
		var doc sitekb.Document
		var fetchedAt string

		if err := rows.Scan(&doc.ID, &doc.CollectionID, &doc.SourceURL, &doc.Content, &doc.ContentHash,
			&doc.Language, &doc.Position, &fetchedAt); err != nil {
			return nil, err
		}

		if doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocumentsByCollection removes all documents for a collection.
func (s *DocumentService) DeleteDocumentsByCollection(ctx context.Context, collectionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection_id = ?", collectionID)
	return err
}
