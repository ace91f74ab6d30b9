package usecase

import (
	"errors"
	"time"

	"campus-services/internal/model"
	"campus-services/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserUsecase struct {
	repo   repository.UserRepository
	secret []byte
}

func NewUserUsecase(repo repository.UserRepository, secret []byte) *UserUsecase {
	return &UserUsecase{repo: repo, secret: secret}
}

func (u *UserUsecase) Register(name, role, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Name:     name,
		Role:     role,
		Email:    email,
		Password: string(hashedPassword),
	}
	return u.repo.Create(&user)
}

// Login verifies the credentials and signs a 24h bearer token carrying
// the user's id, email and role.
func (u *UserUsecase) Login(email, password string) (string, error) {
	user, err := u.repo.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}
