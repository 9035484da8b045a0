package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.NotEqual(t, id, GetTraceID(SetTraceID(context.Background())))
	assert.Equal(t, "abc", GetTraceID(WithTraceID(ctx, "abc")))
}
