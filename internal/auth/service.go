package auth

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

// Demo credentials served by the login-debug endpoint and seeded as the
// default admin when the table is empty.
const (
	DemoEmail    = "owner@fitcircle.dev"
	DemoPassword = "fitcircle123"
)

type Service struct {
	repo   Repository
	tokens *TokenManager
	logger *slog.Logger
}

func NewService(repo Repository, tokens *TokenManager, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Login authenticates an admin and issues an access token. The error never
// distinguishes an unknown email from a wrong password. Storage failures
// stay uncategorized so the boundary logs them and answers 500, not 401.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	token, err := s.tokens.GenerateAccessToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Success: true,
		Token:   token,
		Admin:   admin,
	}, nil
}

// EnsureDefaultAdmin seeds the demo owner account when no admin exists yet,
// so a fresh deployment is immediately usable.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &Admin{
		Email:    DemoEmail,
		Password: string(hashed),
		Name:     "Owner",
		Role:     "owner",
	}
	if _, err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("seeded default admin account", "email", DemoEmail)
	return nil
}
