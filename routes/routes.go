package routes

import (
	"os"

	"critichub/handlers"
	"critichub/middleware"
	"critichub/monitoring"
	"critichub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Setup builds the engine with the full middleware chain and route table.
// main and the handler tests both go through here.
func Setup() *gin.Engine {
	if utils.Log == nil {
		utils.InitLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(sessions.Sessions(middleware.SessionName, middleware.NewSessionStore()))
	r.Use(middleware.LoadIdentity())

	if os.Getenv("CSRF_ENABLED") == "true" {
		r.Use(middleware.CSRFProtection())
		r.GET("/csrf-token", middleware.GetCSRFTokenHandler)
	}

	r.Static("/static", handlers.StaticDir())
	r.GET("/metrics", monitoring.PrometheusHandler())

	// Public catalog
	r.GET("/", handlers.Home)
	r.GET("/discover/:order", handlers.Discover)
	r.POST("/discover/:order", handlers.Discover)
	r.GET("/game/:game_id", handlers.GameDetail)
	r.POST("/game/:game_id", handlers.GameDetail)

	// Registration and login
	r.GET("/register", handlers.RegisterPage)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.LoginPage)
	r.POST("/login", handlers.Login)
	r.GET("/admin/login", handlers.AdminLoginPage)
	r.POST("/admin/login", handlers.AdminLogin)
	r.GET("/logout", handlers.Logout)

	// Logged-in users only (admins are redirected to user login)
	user := r.Group("/", middleware.RequireUser())
	{
		user.GET("/game/:game_id/:review_id/helpfulness/:vote", handlers.Helpfulness)
		user.GET("/review/:game_id", handlers.WriteReviewPage)
		user.POST("/review/:game_id", handlers.WriteReview)
		user.GET("/profile", handlers.Profile)
		user.POST("/profile", handlers.Profile)
	}

	// Admin console
	admin := r.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("", handlers.AdminHome)
		admin.POST("", handlers.AdminHome)
		admin.GET("/add-game", handlers.AddGamePage)
		admin.POST("/add-game", handlers.AddGame)
		admin.GET("/delete-game", handlers.DeleteGamePage)
		admin.POST("/delete-game", handlers.DeleteGame)
		admin.GET("/delete-user", handlers.DeleteUserPage)
		admin.POST("/delete-user", handlers.DeleteUser)
		admin.GET("/delete-review", handlers.DeleteReviewPage)
		admin.POST("/delete-review", handlers.DeleteReview)
		admin.GET("/upload-image", handlers.UploadImagePage)
		admin.POST("/upload-image", handlers.UploadImage)
		admin.GET("/see-reviews", handlers.SeeReviews)
		admin.GET("/see-users", handlers.SeeUsers)
		admin.GET("/stats", handlers.GetDashboardStats)
	}
	r.GET("/new-admin", middleware.RequireAdmin(), handlers.NewAdminPage)
	r.POST("/new-admin", middleware.RequireAdmin(), handlers.NewAdmin)

	return r
}
