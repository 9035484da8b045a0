package validation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/phrazzld/bookstore-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkString(t *testing.T, c validation.Constraint[string], v string) bool {
	t.Helper()
	ok, err := c.Check(context.Background(), v)
	require.NoError(t, err)
	return ok
}

func TestStringConstraints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		constraint validation.Constraint[string]
		value      string
		want       bool
	}{
		{name: "not blank accepts text", constraint: validation.NotBlank(), value: "x", want: true},
		{name: "not blank rejects spaces", constraint: validation.NotBlank(), value: " \t", want: false},
		{name: "size counts runes", constraint: validation.Size(1, 3), value: "äöü", want: true},
		{name: "size rejects long", constraint: validation.Size(1, 3), value: "abcd", want: false},
		{name: "size rejects empty", constraint: validation.Size(1, 3), value: "", want: false},
		{name: "max bytes accepts ascii at limit", constraint: validation.MaxBytes(4), value: "abcd", want: true},
		{name: "max bytes counts encoded bytes", constraint: validation.MaxBytes(72), value: strings.Repeat("é", 40), want: false},
		{name: "email accepts address", constraint: validation.Email(), value: "reader@example.com", want: true},
		{name: "email rejects garbage", constraint: validation.Email(), value: "not-an-email", want: false},
		{name: "email leaves empty to not blank", constraint: validation.Email(), value: "", want: true},
		{name: "isbn13", constraint: validation.ISBN(), value: "9780441013593", want: true},
		{name: "isbn10", constraint: validation.ISBN(), value: "0441013597", want: true},
		{name: "bad isbn", constraint: validation.ISBN(), value: "1234567890", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkString(t, tt.constraint, tt.value))
		})
	}
}

func TestNumericConstraints(t *testing.T) {
	t.Parallel()

	zero, one, minus := int64(0), int64(1), int64(-1)
	ctx := context.Background()

	check := func(c validation.Constraint[*int64], v *int64) bool {
		ok, err := c.Check(ctx, v)
		require.NoError(t, err)
		return ok
	}

	assert.True(t, check(validation.Positive[int64](), nil))
	assert.True(t, check(validation.Positive[int64](), &one))
	assert.False(t, check(validation.Positive[int64](), &zero))
	assert.True(t, check(validation.PositiveOrZero[int64](), &zero))
	assert.False(t, check(validation.PositiveOrZero[int64](), &minus))
	assert.False(t, check(validation.NotNull[int64](), nil))
	assert.True(t, check(validation.NotNull[int64](), &zero))

	ok, err := validation.Min(1).Check(ctx, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = validation.Max(99).Check(ctx, 99)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "must be less than or equal to 99", validation.Max(99).Message)

	hundred := int64(100)
	assert.True(t, check(validation.Between[int64](1, 99), nil))
	assert.True(t, check(validation.Between[int64](1, 99), &one))
	assert.False(t, check(validation.Between[int64](1, 99), &zero))
	assert.False(t, check(validation.Between[int64](1, 99), &hundred))
	assert.Equal(t, "must be between 1 and 99", validation.Between[int64](1, 99).Message)
}
