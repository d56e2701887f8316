package query_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	dom "github.com/omer1abay/Todo-App/internal/domain"
	"github.com/omer1abay/Todo-App/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsPage(t *testing.T) {
	gw, reader := newSQLiteReader(t)
	ctx := context.Background()

	list := dom.TodoList{Title: "Chores", IsActive: true}
	require.NoError(t, gw.Lists().Create(ctx, &list))
	for i := 0; i < 5; i++ {
		it := dom.NewTodoItem(list.ID, fmt.Sprintf("task-%d", i), "")
		require.NoError(t, gw.Items().Create(ctx, &it))
	}
	hidden := dom.NewTodoItem(list.ID, "task-hidden", "")
	hidden.IsActive = false
	require.NoError(t, gw.Items().Create(ctx, &hidden))

	t.Run("first page", func(t *testing.T) {
		page, err := reader.ItemsPage(ctx, list.ID, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		assert.False(t, page.HasPreviousPage)
		assert.True(t, page.HasNextPage)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "task-0", page.Items[0].Title)
	})

	t.Run("last page", func(t *testing.T) {
		page, err := reader.ItemsPage(ctx, list.ID, 3, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "task-4", page.Items[0].Title)
		assert.True(t, page.HasPreviousPage)
		assert.False(t, page.HasNextPage)
	})

	t.Run("past the end", func(t *testing.T) {
		page, err := reader.ItemsPage(ctx, list.ID, 9, 2)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 5, page.TotalCount)
	})

	t.Run("huge page number", func(t *testing.T) {
		page, err := reader.ItemsPage(ctx, list.ID, math.MaxInt, query.MaxPageSize)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasNextPage)
	})

	t.Run("defaults", func(t *testing.T) {
		page, err := reader.ItemsPage(ctx, list.ID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.PageNumber)
		assert.Len(t, page.Items, 5)
	})
}
