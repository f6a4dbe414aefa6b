package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-api/internal/config"
	infraCache "bookstore-api/internal/infrastructure/cache"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/pkg/cache"

	"bookstore-api/internal/domains/author"
	authorHandler "bookstore-api/internal/domains/author/handler"
	authorRepo "bookstore-api/internal/domains/author/repository"
	authorService "bookstore-api/internal/domains/author/service"

	"bookstore-api/internal/domains/book"
	bookHandler "bookstore-api/internal/domains/book/handler"
	bookRepo "bookstore-api/internal/domains/book/repository"
	bookService "bookstore-api/internal/domains/book/service"

	"bookstore-api/internal/domains/user"
	userHandler "bookstore-api/internal/domains/user/handler"
	userRepo "bookstore-api/internal/domains/user/repository"
	userService "bookstore-api/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup; handlers receive their dependencies
// through constructors, never through globals.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo    author.Repository
	AuthorService author.Service
	AuthorHandler *authorHandler.AuthorHandler

	BookRepo    book.Repository
	BookService book.Service
	BookHandler *bookHandler.BookHandler

	UserRepo    user.Repository
	UserService user.Service
	UserHandler *userHandler.UserHandler
}

// NewContainer builds the dependency graph in order: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// The cache is an optimization, not a dependency the app cannot
	// start without.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, continuing without warm cache")
	}
	c.Cache = redisCache

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)

	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
