package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/utils"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/x", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
	})
	return r
}

func do(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware("secret", "admin"))

	assert.Equal(t, http.StatusUnauthorized, do(r, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Authorization", "Bearer garbage").Code)

	customer, err := utils.GenerateToken("u1", "c@x.io", "customer", "secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(r, "Authorization", "Bearer "+customer).Code)

	admin, err := utils.GenerateToken("u2", "a@x.io", "admin", "secret", time.Hour)
	require.NoError(t, err)
	w := do(r, "Authorization", "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u2","role":"admin"}`, w.Body.String())
}

func TestAuthMiddleware_AnyRole(t *testing.T) {
	r := newRouter(AuthMiddleware("secret"))
	tok, err := utils.GenerateToken("u1", "c@x.io", "customer", "secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do(r, "Authorization", "Bearer "+tok).Code)
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := newRouter(RequestLogger())

	w := do(r, "", "")
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	w = do(r, "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
