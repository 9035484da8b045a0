package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Violation is a single failed constraint on one field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Group   Group  `json:"-"`
}

// Violations is an ordered list of failed constraints. A non-empty Violations
// value is returned as an error by Schema.Run so it can travel through the
// usual error return path to the transport layer.
type Violations []Violation

// Error implements the error interface.
func (v Violations) Error() string {
	if len(v) == 0 {
		return "no violations"
	}
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, fmt.Sprintf("%s %s", violation.Field, violation.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the distinct field names in order of first appearance.
func (v Violations) Fields() []string {
	seen := make(map[string]bool, len(v))
	fields := make([]string, 0, len(v))
	for _, violation := range v {
		if !seen[violation.Field] {
			seen[violation.Field] = true
			fields = append(fields, violation.Field)
		}
	}
	return fields
}

// AsViolations extracts Violations from err's chain.
func AsViolations(err error) (Violations, bool) {
	var v Violations
	if errors.As(err, &v) && len(v) > 0 {
		return v, true
	}
	return nil, false
}
