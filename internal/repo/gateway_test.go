package repo_test

import (
	"context"
	"errors"
	"testing"

	dom "github.com/omer1abay/Todo-App/internal/domain"
	"github.com/omer1abay/Todo-App/internal/repo"
	"github.com/omer1abay/Todo-App/internal/repo/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedList(t *testing.T, gw *repo.Gateway, title string, items ...string) dom.TodoList {
	t.Helper()
	ctx := context.Background()

	l := dom.TodoList{Title: title, IsActive: true}
	require.NoError(t, gw.Lists().Create(ctx, &l))
	for _, it := range items {
		item := dom.NewTodoItem(l.ID, it, "")
		require.NoError(t, gw.Items().Create(ctx, &item))
		l.Items = append(l.Items, item)
	}
	return l
}

func TestListRepo_GetWithItems(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()
	l := seedList(t, gw, "Groceries", "Milk", "Eggs")

	_, err := gw.Items().Deactivate(ctx, l.Items[1].ID)
	require.NoError(t, err)

	got, err := gw.Lists().GetWithItems(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Milk", got.Items[0].Title)
}

func TestListRepo_SoftDeleteFilter(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()
	l := seedList(t, gw, "Old")

	l.IsActive = false
	require.NoError(t, gw.Lists().Save(ctx, &l))

	_, err := gw.Lists().GetByID(ctx, l.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = gw.Lists().GetWithItems(ctx, l.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	raw, err := gw.Lists().GetByIDIncludingInactive(ctx, l.ID)
	require.NoError(t, err)
	assert.False(t, raw.IsActive)
}

func TestListRepo_NewRowsDefaultInactive(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()

	l := dom.TodoList{Title: "Forgotten"}
	require.NoError(t, gw.Lists().Create(ctx, &l))

	_, err := gw.Lists().GetByID(ctx, l.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTagRepo_SoftDeleteFilter(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()

	live := dom.Tag{Name: "live", IsActive: true}
	require.NoError(t, gw.Tags().Create(ctx, &live))
	retired := dom.Tag{Name: "retired"}
	require.NoError(t, gw.Tags().Create(ctx, &retired))

	got, err := gw.Tags().GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, "live", got.Name)

	_, err = gw.Tags().GetByID(ctx, retired.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCreateMapsDuplicateKey(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()

	l := dom.TodoList{Title: "One", IsActive: true}
	require.NoError(t, gw.Lists().Create(ctx, &l))
	dupList := dom.TodoList{ID: l.ID, Title: "Two", IsActive: true}
	assert.ErrorIs(t, gw.Lists().Create(ctx, &dupList), repo.ErrDuplicate)

	tag := dom.Tag{Name: "one", IsActive: true}
	require.NoError(t, gw.Tags().Create(ctx, &tag))
	dupTag := dom.Tag{ID: tag.ID, Name: "two", IsActive: true}
	assert.ErrorIs(t, gw.Tags().Create(ctx, &dupTag), repo.ErrDuplicate)
}

func TestItemTagRepo_CreateListDelete(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()
	l := seedList(t, gw, "L", "I")
	itemID := l.Items[0].ID

	require.NoError(t, gw.ItemTags().Create(ctx, []dom.TodoItemTag{
		{TodoItemID: itemID, TagID: 1},
		{TodoItemID: itemID, TagID: 2},
	}))

	got, err := gw.ItemTags().ListByItem(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NoError(t, gw.ItemTags().Delete(ctx, got[:1]))
	got, err = gw.ItemTags().ListByItem(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].TagID)
}

func TestGateway_InTxRollsBack(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()
	boom := errors.New("boom")

	l := dom.TodoList{Title: "Ghost", IsActive: true}
	err := gw.InTx(ctx, func(tx *repo.Gateway) error {
		if err := tx.Lists().Create(ctx, &l); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = gw.Lists().GetByIDIncludingInactive(ctx, l.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestGateway_InTxCancelled(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx, cancel := context.WithCancel(context.Background())

	l := dom.TodoList{Title: "Half", IsActive: true}
	err := gw.InTx(ctx, func(tx *repo.Gateway) error {
		if err := tx.Lists().Create(ctx, &l); err != nil {
			return err
		}
		cancel()
		return nil
	})
	assert.Error(t, err)

	_, err = gw.Lists().GetByIDIncludingInactive(context.Background(), l.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestAuditAuthorStamped(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := repo.WithAuthor(context.Background(), "alice")

	l := dom.TodoList{Title: "Audited", IsActive: true}
	require.NoError(t, gw.Lists().Create(ctx, &l))

	got, err := gw.Lists().GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.CreatedBy)
	assert.Equal(t, "alice", got.UpdatedBy)
	assert.False(t, got.CreatedAt.IsZero())

	bobCtx := repo.WithAuthor(context.Background(), "bob")
	got.Title = "Renamed"
	require.NoError(t, gw.Lists().Save(bobCtx, &got))

	again, err := gw.Lists().GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.CreatedBy)
	assert.Equal(t, "bob", again.UpdatedBy)
}

func TestUserRepo_Duplicate(t *testing.T) {
	gw := repotest.NewGateway(t)
	ctx := context.Background()

	_, err := gw.Users().Create(ctx, "alice", "hash")
	require.NoError(t, err)

	_, err = gw.Users().Create(ctx, "alice", "hash")
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	u, err := gw.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = gw.Users().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
