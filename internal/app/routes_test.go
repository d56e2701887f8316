package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omer1abay/Todo-App/internal/config"
	"github.com/omer1abay/Todo-App/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var cfg config.Config
	cfg.App = config.AppConfig{Env: "test", Version: "v-test"}
	cfg.HTTP.CORSOrigins = []string{"*"}
	cfg.DB = config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := OpenDatabase(context.Background(), cfg.DB)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newRouter(cfg, db, nil)
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestGroceriesScenarioOverHTTP(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/TodoLists", gin.H{"title": "Groceries"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(1), decode[int64](t, w))

	w = do(t, r, http.MethodPost, "/api/TodoItems", gin.H{"listId": 1, "title": "Milk"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(1), decode[int64](t, w))

	w = do(t, r, http.MethodPost, "/api/Tags/CreateTag", gin.H{"name": "Urgent"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(1), decode[int64](t, w))

	w = do(t, r, http.MethodPut, "/api/TodoItems/1/details", gin.H{
		"listId": 1, "priority": 2, "note": "semi-skimmed", "tags": []int{1}, "reminder": "2026-05-01",
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/TodoLists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[dto.BoardResponse](t, w)
	require.Len(t, board.Lists, 1)
	require.Len(t, board.Lists[0].Items, 1)
	item := board.Lists[0].Items[0]
	assert.Equal(t, "Milk", item.Title)
	assert.Equal(t, 2, item.Priority)
	assert.Equal(t, "#FFFFFF", item.BackgroundColor)
	require.Len(t, item.Tags, 1)
	assert.Equal(t, "Urgent", item.Tags[0].Name)
	require.NotNil(t, item.Reminder)
	assert.Equal(t, "2026-05-01", item.Reminder.Format("2006-01-02"))
	assert.Len(t, board.PriorityLevels, 4)

	w = do(t, r, http.MethodDelete, "/api/TodoLists/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/TodoLists", nil)
	board = decode[dto.BoardResponse](t, w)
	assert.Empty(t, board.Lists)
	assert.Len(t, board.Tags, 1)
}

func TestNotFoundResponses(t *testing.T) {
	r := setupTestRouter(t)

	cases := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodPut, "/api/TodoLists/9", gin.H{"title": "x"}},
		{http.MethodDelete, "/api/TodoLists/9", nil},
		{http.MethodPut, "/api/TodoItems/9", gin.H{"title": "x", "done": true}},
		{http.MethodPut, "/api/TodoItems/9/details", gin.H{"listId": 1, "tags": []int{}}},
		{http.MethodDelete, "/api/TodoItems/9", nil},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(t, r, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
		})
	}
}

func TestValidationErrors(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/TodoLists", gin.H{"title": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"validation failed","fields":{"title":"is required"}}`, w.Body.String())

	long := string(bytes.Repeat([]byte("a"), 201))
	w = do(t, r, http.MethodPost, "/api/TodoItems", gin.H{"listId": 1, "title": long, "backgroundColor": "red"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[struct {
		Fields map[string]string `json:"fields"`
	}](t, w)
	assert.Equal(t, "must be at most 200 characters", body.Fields["title"])
	assert.Contains(t, body.Fields, "backgroundColor")

	w = do(t, r, http.MethodPut, "/api/TodoItems/1/details", gin.H{"listId": 1, "priority": 7})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decode[struct {
		Fields map[string]string `json:"fields"`
	}](t, w)
	assert.Equal(t, "must be at most 3", body.Fields["priority"])

	w = do(t, r, http.MethodGet, "/api/TodoItems", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "listId")

	w = do(t, r, http.MethodDelete, "/api/TodoItems/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlankNamesRejected(t *testing.T) {
	r := setupTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/TodoLists", gin.H{"title": "L"})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/api/TodoItems", gin.H{"listId": 1, "title": "task"})
	require.Equal(t, http.StatusOK, w.Code)

	cases := []struct {
		method, path, field string
		body                gin.H
	}{
		{http.MethodPost, "/api/TodoLists", "title", gin.H{"title": "   "}},
		{http.MethodPut, "/api/TodoLists/1", "title", gin.H{"title": "\t \n"}},
		{http.MethodPost, "/api/TodoItems", "title", gin.H{"listId": 1, "title": "  "}},
		{http.MethodPut, "/api/TodoItems/1", "title", gin.H{"title": " ", "done": true}},
		{http.MethodPost, "/api/Tags/CreateTag", "name", gin.H{"name": "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(t, r, tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			body := decode[struct {
				Fields map[string]string `json:"fields"`
			}](t, w)
			assert.Equal(t, "must not be blank", body.Fields[tc.field])
		})
	}

	board := decode[dto.BoardResponse](t, do(t, r, http.MethodGet, "/api/TodoLists", nil))
	require.Len(t, board.Lists, 1)
	assert.Equal(t, "L", board.Lists[0].Title)
	require.Len(t, board.Lists[0].Items, 1)
	assert.Equal(t, "task", board.Lists[0].Items[0].Title)
	assert.False(t, board.Lists[0].Items[0].Done)
	assert.Empty(t, board.Tags)
}

func TestUnknownTagRejected(t *testing.T) {
	r := setupTestRouter(t)
	do(t, r, http.MethodPost, "/api/TodoLists", gin.H{"title": "L"})
	do(t, r, http.MethodPost, "/api/TodoItems", gin.H{"listId": 1, "title": "task"})

	w := do(t, r, http.MethodPut, "/api/TodoItems/1/details", gin.H{"listId": 1, "tags": []int{7}})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestItemsPageOverHTTP(t *testing.T) {
	r := setupTestRouter(t)

	do(t, r, http.MethodPost, "/api/TodoLists", gin.H{"title": "L"})
	for _, title := range []string{"c", "a", "b"} {
		w := do(t, r, http.MethodPost, "/api/TodoItems", gin.H{"listId": 1, "title": title})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/TodoItems?listId=1&pageNumber=1&pageSize=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.ItemsPageResponse](t, w)
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].Title)
	assert.Equal(t, "b", page.Items[1].Title)

	w = do(t, r, http.MethodGet, "/api/TodoItems?listId=1&pageNumber=1000001", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/TodoItems?listId=1&pageNumber=1000000&pageSize=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[dto.ItemsPageResponse](t, w)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalCount)
	assert.False(t, page.HasNextPage)
}

func TestUpdateItemTogglesDone(t *testing.T) {
	r := setupTestRouter(t)

	do(t, r, http.MethodPost, "/api/TodoLists", gin.H{"title": "L"})
	do(t, r, http.MethodPost, "/api/TodoItems", gin.H{"listId": 1, "title": "task"})

	w := do(t, r, http.MethodPut, "/api/TodoItems/1", gin.H{"title": "task!", "done": true})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	board := decode[dto.BoardResponse](t, do(t, r, http.MethodGet, "/api/TodoLists", nil))
	require.Len(t, board.Lists[0].Items, 1)
	assert.True(t, board.Lists[0].Items[0].Done)
	assert.Equal(t, "task!", board.Lists[0].Items[0].Title)
}

func TestOperationalEndpoints(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"env":"test","checks":{"db":"ok"}}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/version", nil)
	assert.JSONEq(t, `{"version":"v-test"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "a", "password": "b"})
	assert.Equal(t, http.StatusNotFound, w.Code, "auth routes need redis")
}

func TestMigrateRejectsSQLite(t *testing.T) {
	db, err := OpenDatabase(context.Background(), config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Error(t, Migrate(context.Background(), db, "up"))
}
