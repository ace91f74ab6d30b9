package main

import (
	"fmt"

	"campus-services/config"
	"campus-services/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	if config.GetEnv("GROQ_API_KEY", "") == "" {
		// Not fatal: the chat agent answers with an explanatory message.
		fmt.Println("Warning: GROQ_API_KEY is not set, chat requests will be degraded.")
	}

	config.ConnectDB()

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAgentRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Campus services API listening on :" + port)
	app.Listen(":" + port)
}
