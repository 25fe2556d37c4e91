package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"critichub/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	SessionName = "critichub"
	sessionUser = "user_id"
)

// NewSessionStore builds the signed cookie store backing all session state:
// the login identity and the per-review vote history.
func NewSessionStore() sessions.Store {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-only-session-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   0, // session cookie, cleared with the browser
	})
	return store
}

// LoadIdentity copies the session identity into the request context before
// every handler. Handlers read c.Get("user_id"), never the session directly.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(sessionUser).(string); ok && id != "" {
			c.Set("user_id", id)
		}
		c.Next()
	}
}

// RequireUser passes only logged-in non-admin users. Everyone else is sent to
// the login page with the original URL preserved for the post-login redirect.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, exists := c.Get("user_id")
		if !exists || id.(string) == models.AdminSentinel {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin passes only the admin session. No next-URL preservation.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, exists := c.Get("user_id")
		if !exists || id.(string) != models.AdminSentinel {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetIdentity clears any prior session state and stores the new identity.
// Login and logout both route through here.
func SetIdentity(c *gin.Context, id string) error {
	session := sessions.Default(c)
	session.Clear()
	if id != "" {
		session.Set(sessionUser, id)
	}
	return session.Save()
}

// VoteKey is the session key recording this session's last helpfulness vote
// on a review.
func VoteKey(reviewID uint) string {
	return fmt.Sprintf("vote:%d", reviewID)
}

// RecordedVote returns the vote (0 or 1) this session last cast on the
// review, if any.
func RecordedVote(c *gin.Context, reviewID uint) (int, bool) {
	session := sessions.Default(c)
	v, ok := session.Get(VoteKey(reviewID)).(int)
	return v, ok
}

// RecordVote stores the vote this session cast on the review.
func RecordVote(c *gin.Context, reviewID uint, vote int) error {
	session := sessions.Default(c)
	session.Set(VoteKey(reviewID), vote)
	return session.Save()
}
