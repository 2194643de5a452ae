package item

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/platform/apperr"
	"shareit/internal/platform/identity"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/items", identity.Require(), h.Create)
	r.PATCH("/items/:itemId", identity.Require(), h.Update)
	r.GET("/items/search", h.Search)
	r.GET("/items/:itemId", identity.Require(), h.GetByID)
	r.GET("/items", identity.Require(), h.ListForOwner)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid json body")))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), identity.CallerID(c), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Update(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid json body")))
		return
	}

	res, err := h.svc.Update(c.Request.Context(), identity.CallerID(c), itemID, req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetByID(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	res, err := h.svc.GetByID(c.Request.Context(), identity.CallerID(c), itemID)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListForOwner(c *gin.Context) {
	from := parseIntDefault(c.Query("from"), 0)
	size := parseIntDefault(c.Query("size"), 10)

	res, err := h.svc.ListForOwner(c.Request.Context(), identity.CallerID(c), from, size)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Search(c *gin.Context) {
	res, err := h.svc.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid "+name+" path parameter")))
		return 0, false
	}
	return id, true
}

func parseIntDefault(s string, d int) int {
	if s == "" {
		return d
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}
