package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"refuge_backend/internal/auth/password"
	"refuge_backend/internal/auth/repository"
	"refuge_backend/platform/apperr"
	"refuge_backend/platform/config"
	"refuge_backend/platform/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo *repository.Repository
	cfg  config.AuthConfig
	log  *logger.Logger
}

func New(repo *repository.Repository, cfg config.AuthConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// SignIn checks the member's credentials and issues a signed access token.
// Archived accounts cannot sign in.
func (s *Service) SignIn(ctx context.Context, email, plainPassword string) (string, time.Duration, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.log.AuthEvent("sign_in", email, false, "unknown email")
		return "", 0, ErrInvalidCredentials
	}
	if err := password.Compare(account.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("sign_in", email, false, "wrong password")
		return "", 0, ErrInvalidCredentials
	}
	if account.Archived {
		s.log.AuthEvent("sign_in", email, false, "account archived")
		return "", 0, ErrInvalidCredentials
	}

	ttl := s.cfg.GetAccessTokenTTL()
	token, err := s.signJWT(account.ID, account.Groups, ttl)
	if err != nil {
		return "", 0, err
	}
	s.log.AuthEvent("sign_in", email, true, "")
	return token, ttl, nil
}

// Me returns the signed-in member's own account.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (repository.Account, error) {
	account, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Account{}, apperr.NotFound("account not found")
	}
	return account, err
}

// ChangePassword replaces the member's password after checking the current one.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return ErrInvalidCredentials
	}
	if err := password.Compare(account.PasswordHash, current); err != nil {
		s.log.AuthEvent("change_password", account.Email, false, "wrong current password")
		return ErrInvalidCredentials
	}
	hash, err := password.Hash(next)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	s.log.AuthEvent("change_password", account.Email, true, "")
	return nil
}

func (s *Service) signJWT(userID uuid.UUID, groups []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    userID.String(),
		"groups": groups,
		"exp":    now.Add(ttl).Unix(),
		"iat":    now.Unix(),
	}
	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
