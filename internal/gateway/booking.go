package gateway

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/platform/apperr"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}
	if !req.Start.Before(*req.End) {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("start must be before end")))
		return
	}
	h.forward(c, "/bookings", req)
}

func (h *Handler) ApproveBooking(c *gin.Context) {
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("approved query parameter must be a boolean")))
		return
	}
	h.forward(c, "/bookings/"+id, nil)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	h.forward(c, "/bookings/"+id, nil)
}

func (h *Handler) ListBookingsForBooker(c *gin.Context) {
	if !h.validState(c) {
		return
	}
	h.forward(c, "/bookings", nil)
}

func (h *Handler) ListBookingsForOwner(c *gin.Context) {
	if !h.validState(c) {
		return
	}
	h.forward(c, "/bookings/owner", nil)
}

// validState rejects unknown state filters before they reach the server.
func (h *Handler) validState(c *gin.Context) bool {
	if _, err := booking.ParseState(c.DefaultQuery("state", "ALL")); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(err))
		return false
	}
	return true
}
