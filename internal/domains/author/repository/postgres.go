package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/domains/author"
	"bookstore-api/pkg/cache"
)

// postgresRepository implements author.Repository on pgxpool with a
// read-through cache for point lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

// Create inserts a new author. The id and creation timestamp are
// generated here, not taken from the client.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (id, name, nationality, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, nationality, created_at
    `

	var created author.Author
	err := r.pool.QueryRow(
		ctx,
		query,
		uuid.New(),
		a.Name,
		a.Nationality,
		time.Now().UTC(),
	).Scan(
		&created.ID,
		&created.Name,
		&created.Nationality,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error().Err(err).Msg("author insert failed")
		return nil, fmt.Errorf("%w: %v", author.ErrStore, err)
	}

	return &created, nil
}

// GetByID retrieves an author, trying the cache first. Cache errors are
// not fatal; the database remains the source of truth.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, name, nationality, created_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Nationality,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		log.Error().Err(err).Str("author_id", id.String()).Msg("author lookup failed")
		return nil, fmt.Errorf("%w: %v", author.ErrStore, err)
	}

	if err := r.cache.Set(ctx, cacheKey, a, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("author cache set failed")
	}

	return &a, nil
}

// GetAll returns every author in insertion order. The secondary sort on
// id keeps the order stable when timestamps collide.
func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, nationality, created_at
        FROM authors
        ORDER BY created_at ASC, id ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("author list query failed")
		return nil, fmt.Errorf("%w: %v", author.ErrStore, err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Nationality, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", author.ErrStore, err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("author list iteration failed")
		return nil, fmt.Errorf("%w: %v", author.ErrStore, err)
	}

	return authors, nil
}

// Delete removes at most one row. A zero RowsAffected is not an error:
// deletion is unconditional and idempotent.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM authors WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		log.Error().Err(err).Str("author_id", id.String()).Msg("author delete failed")
		return fmt.Errorf("%w: %v", author.ErrStore, err)
	}

	if err := r.cache.Delete(ctx, authorCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Msg("author cache invalidation failed")
	}

	return nil
}
