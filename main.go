package main

import (
	"log"
	"os"

	"cipher-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{getEnv("ALLOWED_ORIGIN", "http://localhost:3000")}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	router.Use(cors.New(config))

	cipherHandler := handlers.NewCipherHandler()

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		ciphers := api.Group("/cipher")
		{
			ciphers.GET("/algorithms", cipherHandler.ListAlgorithms)
			ciphers.POST("/encrypt", cipherHandler.Encrypt)
			ciphers.POST("/decrypt", cipherHandler.Decrypt)
		}
	}

	port := getEnv("PORT", "8080")

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/cipher/encrypt    - Encrypt text with the selected cipher")
	log.Printf("  POST /api/v1/cipher/decrypt    - Decrypt text with the selected cipher")
	log.Printf("  GET  /api/v1/cipher/algorithms - List supported ciphers and key types")
	log.Printf("  GET  /api/v1/health            - Health check")
	log.Printf("")
	log.Printf("Ciphers: Caesar, Vigenère, Rail Fence, Playfair")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
