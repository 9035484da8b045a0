// Package testdb provides helpers for tests that run against a real PostgreSQL
// database.
//
// Tests using it live behind the "integration" build tag and are skipped when
// no database URL is configured:
//
//	BOOKSTORE_TEST_DATABASE_URL=postgres://... go test -tags=integration ./...
//
// GetTestDBWithT opens the connection and brings the schema up to date once per
// process. WithTx hands each test a transaction that is always rolled back, so
// tests can run in parallel without seeing each other's rows.
package testdb
