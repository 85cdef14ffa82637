package history

import (
	"context"
	"testing"

	"codeberg.org/codegen/server/api/rest/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exercises the behavior every Repository implementation must share
func runRepositoryContract(t *testing.T, repo Repository) {
	ctx := context.Background()

	t.Run("empty list is non-nil", func(t *testing.T) {
		records, err := repo.List(ctx, pagination.All())

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	first, err := repo.Create(ctx, "sort a list", `{"code":"sorted(xs)"}`)
	require.NoError(t, err)
	second, err := repo.Create(ctx, "reverse a string", "not json at all")
	require.NoError(t, err)
	third, err := repo.Create(ctx, "read a file", `{"code":"open(p).read()"}`)
	require.NoError(t, err)

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		assert.Positive(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
		assert.Equal(t, "reverse a string", second.Prompt)
		assert.Equal(t, "not json at all", second.Response)
		assert.False(t, first.CreatedAt.IsZero())
	})

	t.Run("list is most recent first", func(t *testing.T) {
		records, err := repo.List(ctx, pagination.All())

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []int64{third.ID, second.ID, first.ID},
			[]int64{records[0].ID, records[1].ID, records[2].ID})
		assert.Equal(t, "read a file", records[0].Prompt)
	})

	t.Run("list honors limit and offset", func(t *testing.T) {
		records, err := repo.List(ctx, pagination.Params{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, second.ID, records[0].ID)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID))

		records, err := repo.List(ctx, pagination.All())
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, r := range records {
			assert.NotEqual(t, second.ID, r.ID)
		}
	})

	t.Run("delete of missing id is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 999999))

		records, err := repo.List(ctx, pagination.All())
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
