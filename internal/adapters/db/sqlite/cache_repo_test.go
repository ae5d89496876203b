package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline/internal/domain"
)

func TestCacheLookupMiss(t *testing.T) {
	repo := NewCacheRepo(testDB(t))

	payload, ok, err := repo.Lookup(context.Background(), "no-such-hash")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, payload)
}

func TestCacheStoreAndLookup(t *testing.T) {
	repo := NewCacheRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "h1", domain.KindCheck, `{"issues":[]}`))

	payload, ok, err := repo.Lookup(ctx, "h1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"issues":[]}`, payload)
}

func TestCacheStoreOverwrites(t *testing.T) {
	repo := NewCacheRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "h1", domain.KindCheck, "old"))
	require.NoError(t, repo.Store(ctx, "h1", domain.KindCheck, "new"))

	payload, ok, err := repo.Lookup(ctx, "h1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", payload)
}
