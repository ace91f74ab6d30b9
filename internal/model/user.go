package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Role     string `json:"role"` // student, employee, admin
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"` // bcrypt hash, never serialized
}
