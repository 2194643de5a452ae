package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter() (*gin.Engine, *int64) {
	gin.SetMode(gin.TestMode)
	var got int64
	r := gin.New()
	r.GET("/ping", Require(), func(c *gin.Context) {
		got = CallerID(c)
		c.Status(http.StatusOK)
	})
	return r, &got
}

func TestRequire(t *testing.T) {
	t.Run("accepts a positive integer id", func(t *testing.T) {
		r, got := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(Header, "42")

		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, int64(42), *got)
	})

	t.Run("missing header", func(t *testing.T) {
		r, _ := newRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "missing "+Header)
	})

	t.Run("rejects garbage and non-positive ids", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-5", "1.5"} {
			r, _ := newRouter()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(Header, raw)

			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusBadRequest, w.Code, raw)
		}
	})
}

func TestCallerIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	require.Zero(t, CallerID(c))
}
