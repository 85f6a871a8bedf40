package services

import (
	"errors"
	"strings"
	"time"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/repository"
	"github.com/choihyeonji00/project-kiosk/utils"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("Invalid credentials")

// AuthService checks admin credentials. Passwords only ever travel in a
// request body and are compared against bcrypt hashes; nothing is
// matched in a query string.
type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		adminRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login verifies the credentials and mints a JWT. A bad username and a
// bad password fail identically.
func (s *AuthService) Login(username, password string) (string, *entity.Admin, error) {
	username = strings.TrimSpace(username)
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, admin, nil
}
