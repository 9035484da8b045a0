package validation

import (
	"context"
	"fmt"
)

// Constraint is a predicate over a field value, tagged with the group it runs in.
// Check must not mutate the value or any persisted state.
type Constraint[V any] struct {
	Group   Group
	Message string
	Check   func(ctx context.Context, value V) (bool, error)
}

// Rule binds a constraint to a named field of a target type.
type Rule[T any] struct {
	Field   string
	Group   Group
	Message string
	Check   func(ctx context.Context, target T) (bool, error)
}

// FieldRules are the rules declared for one field, in declaration order.
type FieldRules[T any] []Rule[T]

// Field declares the constraints of one field. value selects the field from the target.
func Field[T, V any](name string, value func(T) V, constraints ...Constraint[V]) FieldRules[T] {
	rules := make(FieldRules[T], 0, len(constraints))
	for _, c := range constraints {
		check := c.Check
		rules = append(rules, Rule[T]{
			Field:   name,
			Group:   c.Group,
			Message: c.Message,
			Check: func(ctx context.Context, target T) (bool, error) {
				return check(ctx, value(target))
			},
		})
	}
	return rules
}

// Schema is the full set of rules for one write-request type.
// A Schema is immutable after construction and safe for concurrent use.
type Schema[T any] struct {
	rules []Rule[T]
}

// NewSchema creates a schema from field declarations. Rule order is preserved
// and determines the order of reported violations.
func NewSchema[T any](fields ...FieldRules[T]) *Schema[T] {
	var rules []Rule[T]
	for _, f := range fields {
		rules = append(rules, f...)
	}
	return &Schema[T]{rules: rules}
}

// Validate evaluates the schema's rules group by group. When groups is empty the
// DefaultSequence is used. Evaluation stops after the first group that produced
// violations and only that group's violations are returned. An empty result means
// the target is valid.
func (s *Schema[T]) Validate(ctx context.Context, target T, groups ...Group) (Violations, error) {
	if len(groups) == 0 {
		groups = DefaultSequence
	}

	for _, group := range groups {
		var violations Violations
		for _, rule := range s.rules {
			if rule.Group != group {
				continue
			}
			ok, err := rule.Check(ctx, target)
			if err != nil {
				return nil, fmt.Errorf("evaluate %s constraint on %s: %w", group, rule.Field, err)
			}
			if !ok {
				violations = append(violations, Violation{
					Field:   rule.Field,
					Message: rule.Message,
					Group:   group,
				})
			}
		}
		if len(violations) > 0 {
			return violations, nil
		}
	}

	return nil, nil
}

// Run is Validate folded into a single error: nil when valid, Violations when the
// target is invalid, or the evaluation error.
func (s *Schema[T]) Run(ctx context.Context, target T) error {
	violations, err := s.Validate(ctx, target)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return violations
	}
	return nil
}

// Len returns the number of rules in the schema.
func (s *Schema[T]) Len() int {
	return len(s.rules)
}
