// Package domain contains the core business entities of the bookstore and the
// failure taxonomy raised when a business rule is violated. It is independent of
// any storage or delivery mechanism.
package domain
