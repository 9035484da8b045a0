package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/bookstore-api/internal/api"
	apiMiddleware "github.com/phrazzld/bookstore-api/internal/api/middleware"
	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/postgres"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

// rateLimitCleanupInterval is how often idle per-client limiters are evicted.
const rateLimitCleanupInterval = time.Minute

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService  auth.JWTService
	validators  *api.Validators
	rateLimiter *apiMiddleware.RateLimiter

	userService      service.UserService
	genreService     service.GenreService
	bookService      service.BookService
	favouriteService service.FavouriteService
	cartService      service.CartService
	orderService     service.OrderService

	stopCleanup chan struct{}
}

// newApplication wires stores, services and request validators on top of an
// open database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		stopCleanup: make(chan struct{}),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BCryptCost)

	userStore := postgres.NewPostgresUserStore(db, logger)
	genreStore := postgres.NewPostgresGenreStore(db, logger)
	bookStore := postgres.NewPostgresBookStore(db, logger)
	favouriteStore := postgres.NewPostgresFavouriteStore(db, logger)
	cartStore := postgres.NewPostgresCartStore(db, logger)
	orderStore := postgres.NewPostgresOrderStore(db, logger)

	app.validators = api.NewValidators(postgres.NewExistenceChecker(db, logger))
	app.rateLimiter = apiMiddleware.NewRateLimiter(cfg.RateLimit)

	app.userService = service.NewUserService(userStore, hasher, db, logger)
	app.genreService = service.NewGenreService(genreStore, logger)
	app.bookService = service.NewBookService(bookStore, logger)
	app.favouriteService = service.NewFavouriteService(favouriteStore, bookStore, logger)
	app.cartService = service.NewCartService(cartStore, bookStore, logger)
	app.orderService = service.NewOrderService(orderStore, cartStore, bookStore, db, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// pagingDefaults converts the configured page sizes for the handlers.
func (app *application) pagingDefaults() pagination.Defaults {
	return pagination.Defaults{
		Size:    app.config.Pagination.DefaultSize,
		MaxSize: app.config.Pagination.MaxSize,
	}
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	go app.rateLimiter.RunCleanup(rateLimitCleanupInterval, app.stopCleanup)

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	close(app.stopCleanup)

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
