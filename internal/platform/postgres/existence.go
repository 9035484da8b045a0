package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
	"github.com/phrazzld/bookstore-api/internal/validation"
)

// resourceTables maps each resource family to the table holding it.
var resourceTables = map[domain.Resource]string{
	domain.ResourceBook:      "books",
	domain.ResourceGenre:     "genres",
	domain.ResourceCart:      "carts",
	domain.ResourceCartItem:  "cart_items",
	domain.ResourceOrder:     "orders",
	domain.ResourceOrderItem: "order_items",
	domain.ResourceFavourite: "favourites",
	domain.ResourceUser:      "users",
}

// ExistenceChecker answers existence questions with one read-only
// SELECT EXISTS per call. Results are never cached.
type ExistenceChecker struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ validation.Checker = (*ExistenceChecker)(nil)

// NewExistenceChecker creates an ExistenceChecker. It panics if db is nil.
func NewExistenceChecker(db store.DBTX, logger *slog.Logger) *ExistenceChecker {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExistenceChecker{
		db:     db,
		logger: logger.With(slog.String("component", "existence_checker")),
	}
}

// ExistsByID implements validation.Checker.
func (c *ExistenceChecker) ExistsByID(ctx context.Context, resource domain.Resource, id int64) (bool, error) {
	table, ok := resourceTables[resource]
	if !ok {
		return false, fmt.Errorf("no table for resource %d", int(resource))
	}

	log := logger.FromContextOrDefault(ctx, c.logger)

	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM " + table + " WHERE id = $1)"
	if err := c.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		log.Error("existence check failed",
			slog.String("resource", resource.String()),
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return false, MapError(err)
	}

	log.Debug("existence checked",
		slog.String("resource", resource.String()),
		slog.Int64("id", id),
		slog.Bool("exists", exists))
	return exists, nil
}
