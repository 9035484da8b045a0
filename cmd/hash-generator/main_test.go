package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phrazzld/bookstore-api/internal/mocks"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{name: "arguments", args: []string{"one", "two"}, want: "hashed:one\nhashed:two\n"},
		{name: "stdin skips blank lines", stdin: "alpha\n\nbeta\n", want: "hashed:alpha\nhashed:beta\n"},
		{name: "nothing to hash", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := run(&mocks.MockPasswordHasher{}, tt.args, strings.NewReader(tt.stdin), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_BcryptHashVerifies(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(4)
	var out bytes.Buffer
	require.NoError(t, run(hasher, []string{"s3cret-passphrase"}, nil, &out))

	assert.NoError(t, hasher.Compare(strings.TrimSpace(out.String()), "s3cret-passphrase"))
}
