package main

import (
	"log"
	"net/http"
	"os"

	"casaboard/config"
	"casaboard/routes"
	"casaboard/services"
	"casaboard/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	sessions := services.NewSessionManager(services.SessionManagerOptions{
		Redis:      config.RedisClient,
		BackendURL: config.BackendBaseURL(),
		Logger:     logger.NewDefaultLogger(logger.InfoLevel),
	})

	routes.SetupRoutes(router, sessions)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
