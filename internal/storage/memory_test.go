package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoraledu/gestordoc/internal/common"
)

func TestMemorySubstrate(t *testing.T) {
	sub := NewMemorySubstrate()
	ctx := context.Background()

	_, err := sub.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, sub.Set(ctx, "k", []byte("v")))
	got, err := sub.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	assert.Equal(t, 1, sub.SetCalls)

	// Mutating the returned slice must not affect the stored copy.
	got[0] = 'x'
	again, err := sub.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), again)
}
