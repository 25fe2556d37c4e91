package handlers

import (
	"errors"
	"net/http"

	"critichub/db"
	"critichub/middleware"
	"critichub/models"
	"critichub/monitoring"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deliberately vague: never reveals whether the id or the password was wrong.
const credentialsError = "User ID or password details are incorrect"

func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Login", "next": c.Query("next")})
}

// Login verifies user credentials, resets the session and redirects to the
// `next` URL captured by the auth gate, or to the home page.
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var user models.User
	err := db.DB.Where("user_id = ?", input.UserID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Dummy compare so unknown ids cost the same as bad passwords
		utils.VerifyPassword(utils.DummyHash, input.Password)
		monitoring.AuthenticationAttempts.WithLabelValues("user", "failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": credentialsError})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := utils.VerifyPassword(user.Password, input.Password); err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("user", "failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": credentialsError})
		return
	}

	if err := middleware.SetIdentity(c, user.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}
	monitoring.AuthenticationAttempts.WithLabelValues("user", "success").Inc()

	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusSeeOther, next)
}

func AdminLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Admin Login"})
}

// AdminLogin verifies against the admins table and marks the session with the
// admin sentinel. No next-URL handling, always lands on the admin hub.
func AdminLogin(c *gin.Context) {
	var input models.AdminLoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var admin models.Admin
	err := db.DB.Where("admin_id = ?", input.AdminID).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.VerifyPassword(utils.DummyHash, input.Password)
		monitoring.AuthenticationAttempts.WithLabelValues("admin", "failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": credentialsError})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up admin"})
		return
	}

	if err := utils.VerifyPassword(admin.Password, input.Password); err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("admin", "failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": credentialsError})
		return
	}

	if err := middleware.SetIdentity(c, models.AdminSentinel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}
	monitoring.AuthenticationAttempts.WithLabelValues("admin", "success").Inc()

	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout clears all session state unconditionally
func Logout(c *gin.Context) {
	if err := middleware.SetIdentity(c, ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}
