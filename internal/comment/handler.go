package comment

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

	r.POST("/items/:itemId/comment", identity.Require(), h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid itemId path parameter")))
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid json body")))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), identity.CallerID(c), itemID, req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
