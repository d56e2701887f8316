package handlers

import (
	"net/http"

	"github.com/omer1abay/Todo-App/internal/dto"

	"github.com/gin-gonic/gin"
)

// CreateTag godoc
// @Summary      Create a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTagRequest  true  "Tag"
// @Success      200   {integer}  int  "new id"
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /Tags/CreateTag [post]
func (h *TodoHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.svc.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, id)
}
