package services

import (
	"time"

	"handicraft-server/models"
	"handicraft-server/utils"
)

type AuthService struct {
	tokens *utils.TokenManager
}

func NewAuthService(tokens *utils.TokenManager) *AuthService {
	return &AuthService{tokens: tokens}
}

func (s *AuthService) IssueToken(req models.TokenRequest) (string, error) {
	return s.tokens.GenerateToken(req.Email, req.Name)
}

func (s *AuthService) VerifyToken(token string) (*utils.Claims, error) {
	return s.tokens.ValidateToken(token)
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}
