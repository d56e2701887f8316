package handlers

import (
	"net/http"

	"github.com/omer1abay/Todo-App/internal/dto"
	"github.com/omer1abay/Todo-App/internal/service"

	"github.com/gin-gonic/gin"
)

// ListItems godoc
// @Summary      Page through a list's items
// @Tags         TodoItems
// @Produce      json
// @Param        listId      query     int  true   "List ID"
// @Param        pageNumber  query     int  false  "Page number (default 1)"
// @Param        pageSize    query     int  false  "Page size (default 10, max 100)"
// @Success      200         {object}  dto.ItemsPageResponse
// @Failure      400         {object}  map[string]interface{}
// @Failure      500         {object}  map[string]string
// @Router       /TodoItems [get]
func (h *TodoHandler) ListItems(c *gin.Context) {
	var q dto.ItemsPageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := h.svc.ItemsPage(c.Request.Context(), q.ListID, q.PageNumber, q.PageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateItem godoc
// @Summary      Create an item
// @Tags         TodoItems
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoItemRequest  true  "Item"
// @Success      200   {integer}  int  "new id"
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /TodoItems [post]
func (h *TodoHandler) CreateItem(c *gin.Context) {
	var req dto.CreateTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.svc.CreateItem(c.Request.Context(), req.ListID, req.Title, req.BackgroundColor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}

// UpdateItem godoc
// @Summary      Update an item's title and done flag
// @Tags         TodoItems
// @Accept       json
// @Param        id    path  int                        true  "Item ID"
// @Param        body  body  dto.UpdateTodoItemRequest  true  "Item"
// @Success      204
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /TodoItems/{id} [put]
func (h *TodoHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.svc.UpdateItem(c.Request.Context(), id, req.Title, req.Done); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateItemDetail godoc
// @Summary      Update an item's list, priority, note, reminder and tags
// @Tags         TodoItems
// @Accept       json
// @Param        id    path  int                              true  "Item ID"
// @Param        body  body  dto.UpdateTodoItemDetailRequest  true  "Details"
// @Success      204
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /TodoItems/{id}/details [put]
func (h *TodoHandler) UpdateItemDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoItemDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	err := h.svc.UpdateItemDetail(c.Request.Context(), service.UpdateItemDetail{
		ID:       id,
		ListID:   req.ListID,
		Priority: req.Priority,
		Note:     req.Note,
		Reminder: req.Reminder.Ptr(),
		Tags:     req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteItem godoc
// @Summary      Delete an item
// @Tags         TodoItems
// @Param        id   path  int  true  "Item ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /TodoItems/{id} [delete]
func (h *TodoHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
