package database

import (
	"log"

	"campus-services/config"
	"campus-services/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll creates the initial admin account if it does not exist yet.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAll(db *gorm.DB) {
	email := config.GetEnv("ADMIN_EMAIL", "admin@campus.local")
	password := config.GetEnv("ADMIN_PASSWORD", "admin123")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Seeder: failed to hash admin password:", err)
		return
	}

	admin := model.User{
		Name:     "Administrator",
		Role:     "admin",
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := db.FirstOrCreate(&admin, model.User{Email: email}).Error; err != nil {
		log.Println("Seeder: failed to create admin account:", err)
		return
	}

	log.Println("Seeder: admin account ready:", email)
}
