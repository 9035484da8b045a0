package domain

import (
	"errors"
	"fmt"
)

// Resource identifies a resource family exposed by the store API.
type Resource int

// Resource families. The zero value is not a valid resource.
const (
	ResourceBook Resource = iota + 1
	ResourceGenre
	ResourceCart
	ResourceCartItem
	ResourceOrder
	ResourceOrderItem
	ResourceFavourite
	ResourceUser
)

// Resources lists every resource family in declaration order.
var Resources = []Resource{
	ResourceBook,
	ResourceGenre,
	ResourceCart,
	ResourceCartItem,
	ResourceOrder,
	ResourceOrderItem,
	ResourceFavourite,
	ResourceUser,
}

// String returns the human-readable name of the resource, e.g. "cart item".
func (r Resource) String() string {
	switch r {
	case ResourceBook:
		return "book"
	case ResourceGenre:
		return "genre"
	case ResourceCart:
		return "cart"
	case ResourceCartItem:
		return "cart item"
	case ResourceOrder:
		return "order"
	case ResourceOrderItem:
		return "order item"
	case ResourceFavourite:
		return "favourite"
	case ResourceUser:
		return "user"
	default:
		return "unknown resource"
	}
}

// Code returns the stable upper-case identifier of the resource, e.g. "CART_ITEM".
func (r Resource) Code() string {
	switch r {
	case ResourceBook:
		return "BOOK"
	case ResourceGenre:
		return "GENRE"
	case ResourceCart:
		return "CART"
	case ResourceCartItem:
		return "CART_ITEM"
	case ResourceOrder:
		return "ORDER"
	case ResourceOrderItem:
		return "ORDER_ITEM"
	case ResourceFavourite:
		return "FAVOURITE"
	case ResourceUser:
		return "USER"
	default:
		return "RESOURCE"
	}
}

// FailureKind classifies why an operation on a resource failed.
type FailureKind int

const (
	// FailureCreation means an invariant was violated while creating a new entity,
	// for example a duplicate unique key.
	FailureCreation FailureKind = iota + 1

	// FailureNotFound means a referenced identifier did not resolve to an existing
	// entity at the time of the operation.
	FailureNotFound

	// FailureUpdate means the entity exists but the requested mutation violates an invariant.
	FailureUpdate
)

// FailureKinds lists every failure kind in declaration order.
var FailureKinds = []FailureKind{FailureCreation, FailureNotFound, FailureUpdate}

// String returns a short description of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureCreation:
		return "creation"
	case FailureNotFound:
		return "not found"
	case FailureUpdate:
		return "update"
	default:
		return "unknown failure"
	}
}

// Error is a classified business-rule violation for one resource family.
// It is distinct from request validation failures, which never produce an Error.
type Error struct {
	Resource Resource
	Kind     FailureKind
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("%s %s failure", e.Resource, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same resource and kind, so that
// errors.Is(err, domain.NewNotFoundError(domain.ResourceBook, "")) matches any
// book not-found failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Resource == e.Resource && t.Kind == e.Kind
}

// NewCreationError returns a creation failure for the given resource.
func NewCreationError(resource Resource, message string, err error) *Error {
	return &Error{Resource: resource, Kind: FailureCreation, Message: message, Err: err}
}

// NewNotFoundError returns a not-found failure for the given resource.
func NewNotFoundError(resource Resource, message string) *Error {
	return &Error{Resource: resource, Kind: FailureNotFound, Message: message}
}

// NewUpdateError returns an update failure for the given resource.
func NewUpdateError(resource Resource, message string, err error) *Error {
	return &Error{Resource: resource, Kind: FailureUpdate, Message: message, Err: err}
}

// NotFoundByID returns a not-found failure naming the missing identifier.
func NotFoundByID(resource Resource, id int64) *Error {
	return NewNotFoundError(resource, fmt.Sprintf("%s with id %d not found", resource, id))
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
