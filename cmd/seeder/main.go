package main

import (
	"fmt"

	"campus-services/config"
	"campus-services/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)

	fmt.Println("Seeding done.")
}
