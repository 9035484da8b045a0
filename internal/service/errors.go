package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// MaxItemQuantity is the largest quantity a single cart line may hold.
const MaxItemQuantity = 99

// notFoundOr returns a not-found failure for resource id when err is a store
// not-found error, and err wrapped with op otherwise.
func notFoundOr(err error, resource domain.Resource, id int64, op string) error {
	if store.IsNotFoundError(err) {
		return domain.NotFoundByID(resource, id)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isInvalidEntity reports whether the database rejected a row because of a
// missing or still-present reference.
func isInvalidEntity(err error) bool {
	return errors.Is(err, store.ErrInvalidEntity)
}
