package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"

	"critichub/cache"
	"critichub/db"
	"critichub/handlers"
	"critichub/monitoring"
	"critichub/routes"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	db.InitDB()
	monitoring.InitMetrics()

	if err := cache.InitRedis(); err != nil {
		utils.Log.Warn("Redis unavailable, running without cache: ", err)
	}
	defer cache.CloseRedis()

	if err := os.MkdirAll(handlers.StaticDir(), 0o755); err != nil {
		log.Fatal("failed to create static directory:", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	useHTTPS := os.Getenv("USE_HTTPS") == "true"
	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")

	if useHTTPS && certFile != "" && keyFile != "" {
		utils.Log.Info("Starting server with HTTPS on port ", port)

		tlsConfig := &tls.Config{
			MinVersion:       tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
		}

		server := &http.Server{
			Addr:      ":" + port,
			Handler:   r,
			TLSConfig: tlsConfig,
		}

		if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
			log.Fatal("Failed to start HTTPS server:", err)
		}
	} else {
		utils.Log.Info("Starting server with HTTP on port ", port)

		if err := r.Run(":" + port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}
}
