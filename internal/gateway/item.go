package gateway

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/platform/apperr"
)

func (h *Handler) CreateItem(c *gin.Context) {
	var req itemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	h.forward(c, "/items", req)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req itemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	h.forward(c, "/items/"+id, req)
}

func (h *Handler) GetItem(c *gin.Context) {
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	h.forward(c, "/items/"+id, nil)
}

func (h *Handler) ListItems(c *gin.Context) {
	h.forward(c, "/items", nil)
}

func (h *Handler) SearchItems(c *gin.Context) {
	h.forward(c, "/items/search", nil)
}

func (h *Handler) CreateComment(c *gin.Context) {
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req commentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	h.forward(c, "/items/"+id+"/comment", req)
}

func pathID(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid "+name+" path parameter: "+raw)))
		return "", false
	}
	return raw, true
}
