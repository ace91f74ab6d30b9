package main

import (
	"fmt"

	"campus-services/config"
	"campus-services/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(logger.New())

	gateway := web.New(config.GetEnv("API_URL", "http://127.0.0.1:3000"))
	gateway.Register(app)

	port := config.GetEnv("WEB_PORT", "3001")
	fmt.Println("Campus services web gateway listening on :" + port)
	app.Listen(":" + port)
}
