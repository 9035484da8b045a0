package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/bookstore-api/internal/pagination"
)

// sortColumns maps the sort properties a client may use to column expressions.
// Anything not listed is ignored, so user input never reaches the SQL text.
type sortColumns map[string]string

// orderBy renders an ORDER BY clause for s. fallback is used when no requested
// property is allowed. The primary key is always appended so paging is stable.
func (c sortColumns) orderBy(s pagination.Sort, fallback, key string) string {
	parts := make([]string, 0, len(s)+1)
	for _, o := range s {
		column, ok := c[o.Property]
		if !ok {
			continue
		}
		direction := "ASC"
		if o.Direction == pagination.Desc {
			direction = "DESC"
		}
		parts = append(parts, column+" "+direction)
	}
	if len(parts) == 0 {
		parts = append(parts, fallback)
	}
	parts = append(parts, key+" ASC")
	return "ORDER BY " + strings.Join(parts, ", ")
}

// allowedSort keeps only the orders whose property is in c.
func (c sortColumns) allowedSort(s pagination.Sort) pagination.Sort {
	var out pagination.Sort
	for _, o := range s {
		if _, ok := c[o.Property]; ok {
			out = append(out, o)
		}
	}
	return out
}

// limitOffset renders the LIMIT/OFFSET clause using the next two placeholders
// after argc existing arguments.
func limitOffset(argc int) string {
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", argc+1, argc+2)
}
