package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/sitekb"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitekb.CollectionService = (*CollectionService)(nil)

// CollectionService implements sitekb.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates a new collection.
func (s *CollectionService) CreateCollection(ctx context.Context, collection *sitekb.Collection) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	collection.ID = uuid.New().String()
	now := time.Now().UTC()
	collection.CreatedAt = now
	collection.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, seed_urls, recursive, translate_to, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, collection.ID, collection.Name, joinSeedURLs(collection.SeedURLs), collection.Recursive,
		collection.TranslateTo, collection.CreatedAt.Format(time.RFC3339), collection.UpdatedAt.Format(time.RFC3339))

	if isUniqueConstraintErr(err) {
		return sitekb.Errorf(sitekb.ECONFLICT, "collection %q already exists", collection.Name)
	}

	return err
}

// FindCollectionByID retrieves a collection by ID.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*sitekb.Collection, error) {
	var collection sitekb.Collection
	var seedURLs, createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, seed_urls, recursive, translate_to, created_at, updated_at
		FROM collections
		WHERE id = ?
	`, id).Scan(&collection.ID, &collection.Name, &seedURLs, &collection.Recursive,
		&collection.TranslateTo, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, sitekb.Errorf(sitekb.ENOTFOUND, "collection not found")
	}
	if err != nil {
		return nil, err
	}

	collection.SeedURLs = splitSeedURLs(seedURLs)
	if collection.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if collection.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &collection, nil
}

// FindCollections retrieves collections matching the filter.
func (s *CollectionService) FindCollections(ctx context.Context, filter sitekb.CollectionFilter) ([]*sitekb.Collection, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, seed_urls, recursive, translate_to, created_at, updated_at FROM collections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*sitekb.Collection
	for rows.Next() {
		var collection sitekb.Collection
		var seedURLs, createdAt, updatedAt string

		if err := rows.Scan(&collection.ID, &collection.Name, &seedURLs, &collection.Recursive,
			&collection.TranslateTo, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		collection.SeedURLs = splitSeedURLs(seedURLs)
		if collection.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if collection.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		collections = append(collections, &collection)
	}

	return collections, rows.Err()
}

// DeleteCollection permanently removes a collection. Documents belonging to
// the collection are removed by the ON DELETE CASCADE constraint.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitekb.Errorf(sitekb.ENOTFOUND, "collection not found")
	}

	return nil
}
