package request

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

	r.POST("/requests", identity.Require(), h.Create)
	r.GET("/requests/all", identity.Require(), h.ListOthers)
	r.GET("/requests/:requestId", h.GetByID)
	r.GET("/requests", identity.Require(), h.ListOwn)
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

func (h *Handler) ListOwn(c *gin.Context) {
	res, err := h.svc.ListOwn(c.Request.Context(), identity.CallerID(c))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	if res == nil {
		res = []WithAnswersResponse{}
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListOthers(c *gin.Context) {
	res, err := h.svc.ListOthers(c.Request.Context(), identity.CallerID(c))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetByID(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || requestID <= 0 {
		c.JSON(http.StatusBadRequest, apperr.Body(apperr.Invalid("invalid requestId path parameter")))
		return
	}

	res, svcErr := h.svc.GetByID(c.Request.Context(), requestID)
	if svcErr != nil {
		c.JSON(apperr.ToHTTPStatus(svcErr), apperr.Body(svcErr))
		return
	}
	c.JSON(http.StatusOK, res)
}
