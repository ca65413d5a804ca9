package main

import (
	"log"
	"os"

	"civiclink-be/config"
	"civiclink-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	config.ConnectRedis()

	r := gin.Default()
	r.Use(cors.Default())

	routes.AuthRoutes(r)
	routes.CitizenRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
