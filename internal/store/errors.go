package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects an entity,
	// typically because a referenced row does not exist or the row is still
	// referenced by others.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrStaleStatus is returned when a conditional status change finds the
	// entity in a different status than expected.
	ErrStaleStatus = errors.New("entity status changed")

	// Entity-specific "not found" errors

	ErrUserNotFound      = fmt.Errorf("%w: user", ErrNotFound)
	ErrGenreNotFound     = fmt.Errorf("%w: genre", ErrNotFound)
	ErrBookNotFound      = fmt.Errorf("%w: book", ErrNotFound)
	ErrFavouriteNotFound = fmt.Errorf("%w: favourite", ErrNotFound)
	ErrCartNotFound      = fmt.Errorf("%w: cart", ErrNotFound)
	ErrCartItemNotFound  = fmt.Errorf("%w: cart item", ErrNotFound)
	ErrOrderNotFound     = fmt.Errorf("%w: order", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
