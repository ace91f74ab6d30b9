package routes

import (
	"campus-services/config"
	"campus-services/internal/agent"
	"campus-services/internal/handler"
	"campus-services/internal/mailer"
	"campus-services/internal/middleware"
	"campus-services/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAgentRoutes(app *fiber.App, db *gorm.DB) {
	leaveRepo := repository.NewLeaveRepository(db)
	userRepo := repository.NewUserRepository(db)
	mail := mailer.NewFromEnv() // nil when SMTP is not configured

	dispatcher := agent.NewDispatcher(map[string]agent.Agent{
		"nlp":         agent.NewNLPAgent(config.GetEnv("GROQ_API_KEY", ""), config.GetEnv("GROQ_API_URL", agent.DefaultGroqURL)),
		"leave":       agent.NewLeaveAgent(leaveRepo, userRepo, mail),
		"certificate": agent.NewCertificateAgent(config.GetEnv("CERT_DIR", "certificates")),
		"query":       agent.NewQueryAgent(),
	})

	hdl := handler.NewAgentHandler(dispatcher, leaveRepo)
	auth := middleware.Auth(JWTSecret())

	app.Post("/request", auth, hdl.HandleRequest)
	app.Get("/leaves", auth, hdl.ListLeaves)
}
