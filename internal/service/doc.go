// Package service contains the store's use cases. It orchestrates the
// repositories defined in internal/store to fulfil API operations.
//
// Services receive already validated input from the API layer: request
// validation, including the existence of referenced resources, happens before
// a service method is called. Services still re-check everything they depend
// on, because state may change between validation and execution.
//
// Error handling:
//   - business rule violations are returned as *domain.Error, classified by
//     resource and failure kind
//   - store sentinel errors are translated here and never reach the API layer
//     unclassified, except unexpected infrastructure failures
//   - a resource owned by another user is reported as not found, so the API
//     does not reveal which identifiers exist
//
// Operations that write several rows run in store.RunInTransaction.
package service
