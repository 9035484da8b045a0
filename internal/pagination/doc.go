// Package pagination provides the page-of-results envelope returned by list
// endpoints and the page request parsed from query parameters.
//
// A Page is an immutable snapshot: it is built once from a query result with New,
// or rebuilt from an externally supplied JSON payload with json.Unmarshal. The
// JSON decoding path is total; missing, null or out-of-range fields fall back to
// defaults instead of failing.
package pagination
