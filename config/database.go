package config

import (
	"fmt"

	"campus-services/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the relational store and creates missing tables.
// Default is a local sqlite file so the app runs with zero setup;
// set DB_DRIVER=mysql plus DB_DSN for a real server.
func ConnectDB() {
	driver := GetEnv("DB_DRIVER", "sqlite")

	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
		dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/campus_services?charset=utf8mb4&parseTime=True&loc=Local")
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(GetEnv("DB_DSN", "database.db"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database (%s): %v", driver, err))
	}

	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.LeaveRequest{})

	DB = db
}
