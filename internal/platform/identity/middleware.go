// Package identity extracts the caller's user id from the trusted
// X-Sharer-User-Id header. There is no authentication in this system; the
// gateway is expected to have validated the header's presence and shape.
package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/platform/apperr"
)

const (
	// Header carries the integer id of the acting user.
	Header = "X-Sharer-User-Id"

	ctxUserIDKey = "caller_id"
)

// Require parses the identity header and stores the caller id in the gin
// context. Missing or non-positive values abort with 400.
func Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(Header)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				apperr.Body(apperr.Invalid("missing "+Header+" header")))
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				apperr.Body(apperr.Invalid("invalid "+Header+" header: "+raw)))
			return
		}

		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

// CallerID returns the id stored by Require. Zero when the middleware did
// not run on this route.
func CallerID(c *gin.Context) int64 {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
