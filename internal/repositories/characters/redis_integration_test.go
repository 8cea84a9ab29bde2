//go:build integration

package characters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charsheet/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	doc := testutils.CreateTestDocument("int-1", "owner-int", "Integration Hero")
	require.NoError(t, repo.Create(ctx, doc))

	require.NoError(t, doc.LevelUp("Fighter"))
	require.NoError(t, repo.Update(ctx, doc))

	records, err := repo.ListByOwner(ctx, "owner-int")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Document.TotalLevel())
	assert.Equal(t, doc, records[0].Document)

	require.NoError(t, repo.Delete(ctx, "int-1"))
	members, err := client.SMembers(ctx, "owner:owner-int:characters").Result()
	require.NoError(t, err)
	assert.Empty(t, members)
}
