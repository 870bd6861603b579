package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// Anticipated authorization outcomes. Handlers translate these into the
// wire-level envelope; anything else is an unexpected fault.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserBlocked     = errors.New("user is blocked")
	ErrInvalidIssueArg = errors.New("user is nil or blocked")
	ErrUnknownToken    = errors.New("token has no live session")
)

// AuthService orchestrates login, token issuance, validation and renewal.
// The session cache holds the token-to-user cross-reference; the token
// repository is the durable record of every issued token.
type AuthService struct {
	users    repository.UserRepository
	tokens   repository.TokenRepository
	sessions auth.SessionCache
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	TokenRepo    repository.TokenRepository
	SessionCache auth.SessionCache
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    deps.UserRepo,
		tokens:   deps.TokenRepo,
		sessions: deps.SessionCache,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		logger:   logger,
	}
}

// Authenticate resolves a user by credentials. A wrong password and an
// unknown username are indistinguishable: both yield ErrUserNotFound.
func (s *AuthService) Authenticate(ctx context.Context, userName, password string) (*domain.User, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// IsBlocked reports whether the user carries the blocked sentinel.
func (s *AuthService) IsBlocked(user *domain.User) bool {
	return user != nil && user.IsBlocked()
}

// IssueToken signs a fresh bearer token for the user. Issuance for a nil or
// blocked user is a caller bug, rejected before any token exists.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	if user == nil || user.IsBlocked() {
		return "", ErrInvalidIssueArg
	}
	token, _, err := s.tokenMgr.Generate(user)
	if err != nil {
		return "", err
	}
	return token, nil
}

// RecordIssuedToken persists the issued-token record and registers the live
// session. The record's expiry is always creation time plus the token TTL.
func (s *AuthService) RecordIssuedToken(ctx context.Context, user *domain.User, tokenStr string) error {
	now := time.Now()
	record := &domain.IssuedToken{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Token:       tokenStr,
		CreatedTime: now,
		ExpiryTime:  now.Add(s.tokenMgr.TTL()),
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return err
	}
	if err := s.sessions.Put(ctx, tokenStr, user); err != nil {
		return err
	}
	s.logger.Debug("session recorded", zap.Int64("user_id", user.ID))
	return nil
}

// IsAuthenticated reports whether the token belongs to a live, unexpired
// session. A cache miss is final and skips the record store entirely; a
// cached token is then checked against the durable record's expiry.
func (s *AuthService) IsAuthenticated(ctx context.Context, tokenStr string) (bool, error) {
	if _, ok := s.sessions.Get(ctx, tokenStr); !ok {
		return false, nil
	}
	record, err := s.tokens.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return time.Now().Before(record.ExpiryTime), nil
}

// Renew issues and records a fresh token for the owner of lastToken. The old
// token is not revoked; it stays valid until its own expiry elapses.
func (s *AuthService) Renew(ctx context.Context, lastToken string) (string, error) {
	user, ok := s.sessions.Get(ctx, lastToken)
	if !ok {
		return "", ErrUnknownToken
	}
	newToken, err := s.IssueToken(user)
	if err != nil {
		return "", err
	}
	if err := s.RecordIssuedToken(ctx, user, newToken); err != nil {
		return "", err
	}
	return newToken, nil
}

// TokenManager exposes the codec for collaborators that decode claims.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
