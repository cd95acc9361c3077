package services

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/Dosada05/tournament-standings/utils"
)

type AuthService interface {
	// Login checks the administrator credentials and returns the username.
	Login(ctx context.Context, input LoginInput) (string, error)
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authService struct {
	adminUsername     string
	adminPasswordHash string
}

func NewAuthService(adminUsername, adminPasswordHash string) AuthService {
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (string, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return "", ErrInvalidCredentials
	}
	// Without a configured hash nobody can log in.
	if s.adminPasswordHash == "" {
		return "", ErrInvalidCredentials
	}

	userMatches := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passwordMatches := utils.CheckPasswordHash(input.Password, s.adminPasswordHash)
	if !userMatches || !passwordMatches {
		return "", ErrInvalidCredentials
	}
	return s.adminUsername, nil
}
