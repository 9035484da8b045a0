// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Store methods report failures with the sentinel errors declared in this
// package; services translate them into domain failures.
package store
