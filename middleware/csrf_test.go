package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRFProtection())
	r.GET("/csrf-token", GetCSRFTokenHandler)
	r.GET("/page", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/mutate", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCSRFAllowsSafeMethods(t *testing.T) {
	r := csrfTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFBlocksPostWithoutToken(t *testing.T) {
	r := csrfTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mutate", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "CSRF token missing")
}

func TestCSRFBlocksUnknownToken(t *testing.T) {
	r := csrfTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.Header.Set("X-CSRF-Token", "made-up-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid CSRF token")
}

func TestCSRFAcceptsIssuedTokenInHeader(t *testing.T) {
	r := csrfTestRouter()
	token := GenerateCSRFToken()
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.Header.Set("X-CSRF-Token", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFAcceptsIssuedTokenInForm(t *testing.T) {
	r := csrfTestRouter()
	token := GenerateCSRFToken()

	form := url.Values{"csrf_token": {token}}
	req := httptest.NewRequest(http.MethodPost, "/mutate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFExemptsLoginEndpoints(t *testing.T) {
	r := csrfTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFTokenHandlerIssuesToken(t *testing.T) {
	r := csrfTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/csrf-token", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "csrf_token")
}
