package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	h.forward(c, "/users", req)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	h.forward(c, "/users/"+id, req)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	h.forward(c, "/users/"+id, nil)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	h.forward(c, "/users/"+id, nil)
}
