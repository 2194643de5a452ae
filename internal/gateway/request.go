package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateRequest(c *gin.Context) {
	var req itemRequestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	h.forward(c, "/requests", req)
}

func (h *Handler) ListOwnRequests(c *gin.Context) {
	h.forward(c, "/requests", nil)
}

func (h *Handler) ListOtherRequests(c *gin.Context) {
	h.forward(c, "/requests/all", nil)
}

func (h *Handler) GetRequest(c *gin.Context) {
	id, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	h.forward(c, "/requests/"+id, nil)
}
