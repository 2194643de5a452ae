package booking

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

	r.POST("/bookings", identity.Require(), h.Create)
	r.PATCH("/bookings/:bookingId", identity.Require(), h.Approve)
	r.GET("/bookings/owner", identity.Require(), h.ListForOwner)
	r.GET("/bookings/:bookingId", identity.Require(), h.GetByID)
	r.GET("/bookings", identity.Require(), h.ListForBooker)
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

func (h *Handler) Approve(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("approved query parameter must be a boolean")))
		return
	}

	res, err := h.svc.Approve(c.Request.Context(), bookingID, identity.CallerID(c), approved)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetByID(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	res, err := h.svc.GetByID(c.Request.Context(), bookingID, identity.CallerID(c))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListForBooker(c *gin.Context) {
	res, err := h.svc.ListForBooker(c.Request.Context(), identity.CallerID(c), c.DefaultQuery("state", "ALL"))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListForOwner(c *gin.Context) {
	res, err := h.svc.ListForOwner(c.Request.Context(), identity.CallerID(c), c.DefaultQuery("state", "ALL"))
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
