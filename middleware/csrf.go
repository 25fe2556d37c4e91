package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CSRF token store with expiration
type csrfToken struct {
	Token     string
	CreatedAt time.Time
}

var (
	csrfTokens = make(map[string]csrfToken)
	csrfMutex  = &sync.RWMutex{}
)

// GenerateCSRFToken generates a new CSRF token
func GenerateCSRFToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	token := base64.URLEncoding.EncodeToString(b)

	csrfMutex.Lock()
	csrfTokens[token] = csrfToken{
		Token:     token,
		CreatedAt: time.Now(),
	}
	csrfMutex.Unlock()

	go cleanupExpiredTokens()

	return token
}

// cleanupExpiredTokens removes tokens older than 1 hour
func cleanupExpiredTokens() {
	csrfMutex.Lock()
	defer csrfMutex.Unlock()

	now := time.Now()
	for token, data := range csrfTokens {
		if now.Sub(data.CreatedAt) > time.Hour {
			delete(csrfTokens, token)
		}
	}
}

// csrfExempt lists endpoints that cannot carry a token yet: a fresh browser
// has no session before login or registration.
var csrfExempt = map[string]bool{
	"/login":       true,
	"/register":    true,
	"/admin/login": true,
}

// CSRFProtection validates CSRF tokens for state-changing methods
func CSRFProtection() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		if csrfExempt[c.Request.URL.Path] {
			c.Next()
			return
		}

		token := c.GetHeader("X-CSRF-Token")
		if token == "" {
			token = c.PostForm("csrf_token")
		}

		if token == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "CSRF token missing"})
			c.Abort()
			return
		}

		csrfMutex.RLock()
		tokenData, exists := csrfTokens[token]
		csrfMutex.RUnlock()

		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid CSRF token"})
			c.Abort()
			return
		}

		if time.Since(tokenData.CreatedAt) > time.Hour {
			csrfMutex.Lock()
			delete(csrfTokens, token)
			csrfMutex.Unlock()

			c.JSON(http.StatusForbidden, gin.H{"error": "CSRF token expired"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetCSRFTokenHandler endpoint handler to get a new CSRF token
func GetCSRFTokenHandler(c *gin.Context) {
	token := GenerateCSRFToken()
	c.JSON(http.StatusOK, gin.H{
		"csrf_token": token,
		"expires_in": 3600,
	})
}
