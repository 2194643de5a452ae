package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/platform/apperr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/users", h.Create)
	r.PATCH("/users/:userId", h.Update)
	r.GET("/users/:userId", h.Get)
	r.DELETE("/users/:userId", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid json body")))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Update(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid json body")))
		return
	}

	res, err := h.svc.Update(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	res, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.Status(http.StatusOK)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid "+name+" path parameter")))
		return 0, false
	}
	return id, true
}
