package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"campus-services/internal/model"
	"campus-services/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (*UserUsecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewUserUsecase(repository.NewUserRepository(db), []byte("test-secret")), db
}

func TestRegisterThenLogin(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if err := uc.Register("A", "student", "a@x.com", "p"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := uc.Login("a@x.com", "p")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "a@x.com" || claims["role"] != "student" {
		t.Errorf("claims = %v, want email and role bound", claims)
	}
	if claims["user_id"] == nil {
		t.Error("token is missing the user_id claim")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if err := uc.Register("A", "student", "a@x.com", "p"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := uc.Login("a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
	if _, err := uc.Login("nobody@x.com", "p"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials for unknown email", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	uc, db := newTestUsecase(t)

	if err := uc.Register("A", "student", "a@x.com", "p"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	var user model.User
	if err := db.Where("email = ?", "a@x.com").First(&user).Error; err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if user.Password == "p" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if err := uc.Register("A", "student", "a@x.com", "p"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := uc.Register("B", "student", "a@x.com", "q"); err == nil {
		t.Error("duplicate email did not surface the unique-constraint error")
	}
}
