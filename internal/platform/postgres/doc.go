// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, the existence
// checker used by request validation, and the embedded schema migrations.
// It handles query execution and the mapping between domain entities and
// database records.
package postgres
