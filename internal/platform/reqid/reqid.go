// Package reqid tags every request with a ULID so that gateway and server
// log lines can be correlated. An inbound X-Request-Id (set by the gateway)
// is kept as is.
package reqid

import (
	"crypto/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const Header = "X-Request-Id"

func New() string {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Middleware ensures the request carries an id and echoes it on the response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = New()
			c.Request.Header.Set(Header, id)
		}
		c.Header(Header, id)
		c.Next()
	}
}
