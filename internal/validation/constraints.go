package validation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every tag-based constraint; validator.Validate is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Number is the set of numeric field types the numeric constraints accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// Must builds a constraint from a plain predicate.
func Must[V any](group Group, message string, pred func(V) bool) Constraint[V] {
	return Constraint[V]{
		Group:   group,
		Message: message,
		Check: func(_ context.Context, v V) (bool, error) {
			return pred(v), nil
		},
	}
}

// NotNull requires a nullable field to be present.
func NotNull[V any]() Constraint[*V] {
	return Must(Basic, "must not be null", func(v *V) bool { return v != nil })
}

// Positive requires a nullable number to be greater than zero. Null is accepted;
// pair it with NotNull when the field is mandatory.
func Positive[N Number]() Constraint[*N] {
	return Must(Basic, "must be greater than 0", func(v *N) bool {
		return v == nil || *v > 0
	})
}

// PositiveOrZero requires a nullable number to be zero or greater. Null is accepted.
func PositiveOrZero[N Number]() Constraint[*N] {
	return Must(Basic, "must be greater than or equal to 0", func(v *N) bool {
		return v == nil || *v >= 0
	})
}

// Min requires a number to be at least min.
func Min[N Number](min N) Constraint[N] {
	return Must(Basic, fmt.Sprintf("must be greater than or equal to %v", min), func(v N) bool {
		return v >= min
	})
}

// Max requires a number to be at most max.
func Max[N Number](max N) Constraint[N] {
	return Must(Basic, fmt.Sprintf("must be less than or equal to %v", max), func(v N) bool {
		return v <= max
	})
}

// Between requires a nullable number to lie within [min, max]. Null is accepted.
func Between[N Number](min, max N) Constraint[*N] {
	return Must(Basic, fmt.Sprintf("must be between %v and %v", min, max), func(v *N) bool {
		return v == nil || (*v >= min && *v <= max)
	})
}

// NotBlank requires a string with at least one non-whitespace character.
func NotBlank() Constraint[string] {
	return Must(Basic, "must not be blank", func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// Size requires the string length, in runes, to be within [min, max].
func Size(min, max int) Constraint[string] {
	return Must(Basic, fmt.Sprintf("size must be between %d and %d", min, max), func(v string) bool {
		n := utf8.RuneCountInString(v)
		return n >= min && n <= max
	})
}

// MaxBytes caps the encoded length of a string in bytes, for limits that apply
// to the UTF-8 form rather than to characters.
func MaxBytes(max int) Constraint[string] {
	return Must(Basic, fmt.Sprintf("must be at most %d bytes", max), func(v string) bool {
		return len(v) <= max
	})
}

// Tag checks a string against a go-playground/validator tag such as "email" or "isbn".
// Empty strings are accepted so that absence is reported only by NotBlank.
func Tag(tag, message string) Constraint[string] {
	return Constraint[string]{
		Group:   Basic,
		Message: message,
		Check: func(_ context.Context, v string) (bool, error) {
			if v == "" {
				return true, nil
			}
			if err := validate.Var(v, tag); err != nil {
				if _, ok := err.(validator.ValidationErrors); ok {
					return false, nil
				}
				return false, fmt.Errorf("validator tag %q: %w", tag, err)
			}
			return true, nil
		},
	}
}

// Email requires a well-formed email address.
func Email() Constraint[string] {
	return Tag("email", "must be a well-formed email address")
}

// ISBN requires a valid ISBN-10 or ISBN-13.
func ISBN() Constraint[string] {
	return Tag("isbn", "must be a valid ISBN")
}
