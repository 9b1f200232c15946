package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apperrors "github.com/discordpilot/dashboard-server-go/internal/errors"
	"github.com/discordpilot/dashboard-server-go/internal/model"
	"github.com/discordpilot/dashboard-server-go/internal/repository"
	"github.com/discordpilot/dashboard-server-go/internal/util"
)

const minPasswordLength = 8

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.AuthSessionRepository
	sessionTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.AuthSessionRepository,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.MissingRequired("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.InvalidInput("email", "not a valid address")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.InvalidInput("password", "must be at least 8 characters")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("User")
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password").WithCause(err)
	}

	user, err := s.userRepo.Create(ctx, model.CreateUserParams{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	log.Info().Str("userId", user.ID).Msg("user registered")

	return user, nil
}

// Login checks credentials and issues an opaque session token. Only the
// sha256 hash of the token is stored.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.Database(err)
	}
	if user == nil || !util.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, apperrors.Unauthorized("Invalid email or password")
	}

	token, err := util.GenerateToken()
	if err != nil {
		return "", nil, apperrors.Internal("failed to generate token").WithCause(err)
	}

	_, err = s.sessionRepo.Create(ctx, model.CreateAuthSessionParams{
		TokenHash: util.HashToken(token),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	})
	if err != nil {
		return "", nil, apperrors.Database(err)
	}

	log.Info().Str("userId", user.ID).Msg("user logged in")

	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	session, err := s.sessionRepo.FindByTokenHash(ctx, util.HashToken(token))
	if err != nil {
		return apperrors.Database(err)
	}
	if session == nil {
		return nil
	}
	return s.sessionRepo.Delete(ctx, session.ID)
}

// ValidateToken resolves a bearer token to its user, or nil when the token
// is unknown or expired.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	session, err := s.sessionRepo.FindByTokenHash(ctx, util.HashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return s.userRepo.FindByID(ctx, session.UserID)
}
