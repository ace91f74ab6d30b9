package routes

import (
	"campus-services/config"
	"campus-services/internal/handler"
	"campus-services/internal/repository"
	"campus-services/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo, JWTSecret())
	hdl := handler.NewAuthHandler(uc)

	app.Post("/register", hdl.Register)
	app.Post("/login", hdl.Login)
}

// JWTSecret is shared between the token issuer and the auth middleware.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "your_secret_key"))
}
