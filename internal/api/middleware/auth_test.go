package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-catalog/internal/pkg/config"
	"data-catalog/internal/pkg/jwt"
	"data-catalog/pkg/constants"
)

var testJWT = config.JWTConfig{Secret: "test-secret", AccessTokenExpire: 60, RefreshTokenExpire: 120}

func newEngine(cfg config.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoggerMiddleware(), AuthMiddleware(cfg))
	r.POST("/write", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("username"))
	})
	return r
}

func doRequest(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	if header != "" {
		req.Header.Set(constants.HeaderAuthorization, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareEnabled(t *testing.T) {
	r := newEngine(config.AuthConfig{Enabled: true, JWT: testJWT})

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, constants.HeaderBearerPrefix+"garbage").Code)

	refresh, err := jwt.GenerateRefreshToken(testJWT, "alice")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, constants.HeaderBearerPrefix+refresh).Code)

	access, err := jwt.GenerateAccessToken(testJWT, "alice")
	require.NoError(t, err)
	w := doRequest(r, constants.HeaderBearerPrefix+access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestAuthMiddlewareDisabled(t *testing.T) {
	r := newEngine(config.AuthConfig{Enabled: false, JWT: testJWT})

	w := doRequest(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	access, err := jwt.GenerateAccessToken(testJWT, "bob")
	require.NoError(t, err)
	w = doRequest(r, constants.HeaderBearerPrefix+access)
	assert.Equal(t, "bob", w.Body.String())
}
