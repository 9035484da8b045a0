// Package validation runs declarative, group-ordered constraints over write requests.
//
// A Schema is a list of per-field rules. Each rule belongs to exactly one Group.
// Groups are evaluated in sequence (Basic, then Extended) and evaluation stops at the
// first group that produced violations, so referential checks such as Exists never
// run against structurally invalid input:
//
//	schema := validation.NewSchema(
//	    validation.Field("bookID", func(w FavouriteWrite) *int64 { return w.BookID },
//	        validation.NotNull[int64](),
//	        validation.Positive[int64](),
//	        validation.Exists(checker, domain.ResourceBook),
//	    ),
//	)
//	violations, err := schema.Validate(ctx, req)
//
// A non-nil error means a constraint could not be evaluated (for example the
// existence lookup failed); it is never used to report invalid input.
package validation
