package validation

import (
	"context"
	"fmt"

	"github.com/phrazzld/bookstore-api/internal/domain"
)

// Checker answers whether an entity of the given resource type exists.
// Implementations perform a read-only lookup and must not mutate state.
type Checker interface {
	ExistsByID(ctx context.Context, resource domain.Resource, id int64) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, resource domain.Resource, id int64) (bool, error)

// ExistsByID implements Checker.
func (f CheckerFunc) ExistsByID(ctx context.Context, resource domain.Resource, id int64) (bool, error) {
	return f(ctx, resource, id)
}

// Exists requires a nullable identifier to reference an existing entity of the
// given resource type. It runs in the Extended group. A null value is accepted
// without a lookup; a non-null value costs exactly one Checker call, uncached.
//
// Attach Positive alongside Exists so non-positive identifiers are rejected by
// the Basic group before any lookup is made.
func Exists(checker Checker, resource domain.Resource) Constraint[*int64] {
	if checker == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("validation: Exists requires a non-nil Checker")
	}

	return Constraint[*int64]{
		Group:   Extended,
		Message: fmt.Sprintf("%s does not exist", resource),
		Check: func(ctx context.Context, id *int64) (bool, error) {
			if id == nil {
				return true, nil
			}
			exists, err := checker.ExistsByID(ctx, resource, *id)
			if err != nil {
				return false, fmt.Errorf("check %s %d exists: %w", resource, *id, err)
			}
			return exists, nil
		},
	}
}
