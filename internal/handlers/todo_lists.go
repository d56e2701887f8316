package handlers

import (
	"net/http"

	"github.com/omer1abay/Todo-App/internal/dto"
	"github.com/omer1abay/Todo-App/internal/service"

	"github.com/gin-gonic/gin"
)

// TodoHandler serves lists, items and tags.
type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	setupValidator()
	return &TodoHandler{svc: svc}
}

// GetBoard godoc
// @Summary      Lists with their items, all tags and priority levels
// @Tags         TodoLists
// @Produce      json
// @Success      200  {object}  dto.BoardResponse
// @Failure      500  {object}  map[string]string
// @Router       /TodoLists [get]
func (h *TodoHandler) GetBoard(c *gin.Context) {
	board, err := h.svc.Board(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// CreateList godoc
// @Summary      Create a list
// @Tags         TodoLists
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoListRequest  true  "List"
// @Success      200   {integer}  int  "new id"
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /TodoLists [post]
func (h *TodoHandler) CreateList(c *gin.Context) {
	var req dto.CreateTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.svc.CreateList(c.Request.Context(), req.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}

// UpdateList godoc
// @Summary      Rename a list
// @Tags         TodoLists
// @Accept       json
// @Param        id    path  int                        true  "List ID"
// @Param        body  body  dto.UpdateTodoListRequest  true  "List"
// @Success      204
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /TodoLists/{id} [put]
func (h *TodoHandler) UpdateList(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.svc.UpdateList(c.Request.Context(), id, req.Title); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteList godoc
// @Summary      Delete a list and all of its items
// @Tags         TodoLists
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /TodoLists/{id} [delete]
func (h *TodoHandler) DeleteList(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteList(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
