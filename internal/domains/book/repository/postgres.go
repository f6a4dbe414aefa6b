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

	"bookstore-api/internal/domains/book"
	"bookstore-api/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (id, title, genre, author_id, price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, title, genre, author_id, price, created_at
    `

	var created book.Book
	err := r.pool.QueryRow(
		ctx,
		query,
		uuid.New(),
		b.Title,
		b.Genre,
		b.AuthorID,
		b.Price,
		time.Now().UTC(),
	).Scan(
		&created.ID,
		&created.Title,
		&created.Genre,
		&created.AuthorID,
		&created.Price,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error().Err(err).Msg("book insert failed")
		return nil, fmt.Errorf("%w: %v", book.ErrStore, err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var b book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	query := `
        SELECT id, title, genre, author_id, price, created_at
        FROM books
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Genre,
		&b.AuthorID,
		&b.Price,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		log.Error().Err(err).Str("book_id", id.String()).Msg("book lookup failed")
		return nil, fmt.Errorf("%w: %v", book.ErrStore, err)
	}

	if err := r.cache.Set(ctx, cacheKey, b, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("book cache set failed")
	}

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `
        SELECT id, title, genre, author_id, price, created_at
        FROM books
        ORDER BY created_at ASC, id ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("book list query failed")
		return nil, fmt.Errorf("%w: %v", book.ErrStore, err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Genre, &b.AuthorID, &b.Price, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", book.ErrStore, err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("book list iteration failed")
		return nil, fmt.Errorf("%w: %v", book.ErrStore, err)
	}

	return books, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM books WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		log.Error().Err(err).Str("book_id", id.String()).Msg("book delete failed")
		return fmt.Errorf("%w: %v", book.ErrStore, err)
	}

	if err := r.cache.Delete(ctx, bookCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Msg("book cache invalidation failed")
	}

	return nil
}
