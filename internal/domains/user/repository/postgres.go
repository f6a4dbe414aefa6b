package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
        INSERT INTO users (id, name, email, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, email, created_at
    `

	var created user.User
	err := r.pool.QueryRow(
		ctx,
		query,
		uuid.New(),
		u.Name,
		u.Email,
		time.Now().UTC(),
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error().Err(err).Msg("user insert failed")
		return nil, fmt.Errorf("%w: %v", user.ErrStore, err)
	}

	return &created, nil
}
