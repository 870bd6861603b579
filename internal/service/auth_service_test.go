package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
)

type fakeUserRepo struct {
	byUserName map[string]*domain.User
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, int64) error        { return nil }
func (f *fakeUserRepo) GetByID(context.Context, int64) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	user, ok := f.byUserName[userName]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

type fakeTokenRepo struct {
	byToken map[string]*domain.IssuedToken
	lookups int
}

func (f *fakeTokenRepo) Create(_ context.Context, token *domain.IssuedToken) error {
	f.byToken[token.Token] = token
	return nil
}

func (f *fakeTokenRepo) GetByToken(_ context.Context, tokenStr string) (*domain.IssuedToken, error) {
	f.lookups++
	token, ok := f.byToken[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return token, nil
}

func newTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zap.NewNop()
}

func newTestService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	t.Helper()

	users := &fakeUserRepo{byUserName: make(map[string]*domain.User)}
	tokens := &fakeTokenRepo{byToken: make(map[string]*domain.IssuedToken)}

	cfg := config.Config{}
	cfg.Auth = config.AuthConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
		BcryptCost:      4,
	}

	svc := NewAuthService(cfg, AuthDependencies{
		UserRepo:     users,
		TokenRepo:    tokens,
		SessionCache: auth.NewMemorySessionCache(),
	}, newTestLogger(t))
	return svc, users, tokens
}

func seedUser(t *testing.T, users *fakeUserRepo, userName, password string, status int) *domain.User {
	t.Helper()

	hash, err := auth.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &domain.User{
		ID:           42,
		UserName:     userName,
		PasswordHash: hash,
		Email:        userName + "@mail.com",
		CreatedTime:  time.Now(),
		Status:       status,
	}
	users.byUserName[userName] = user
	return user
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestService(t)
	seedUser(t, users, "foo", "123456", 0)

	got, err := svc.Authenticate(context.Background(), "foo", "123456")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if got.UserName != "foo" {
		t.Fatalf("unexpected user %+v", got)
	}

	if _, err := svc.Authenticate(context.Background(), "foo", "wrong"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("wrong password: got %v want ErrUserNotFound", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody", "123456"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user: got %v want ErrUserNotFound", err)
	}
}

func TestIssueToken_RejectsNilAndBlocked(t *testing.T) {
	t.Parallel()

	svc, users, tokens := newTestService(t)
	blocked := seedUser(t, users, "foo", "123456", domain.UserStatusBlocked)

	if _, err := svc.IssueToken(nil); !errors.Is(err, ErrInvalidIssueArg) {
		t.Fatalf("nil user: got %v want ErrInvalidIssueArg", err)
	}
	if _, err := svc.IssueToken(blocked); !errors.Is(err, ErrInvalidIssueArg) {
		t.Fatalf("blocked user: got %v want ErrInvalidIssueArg", err)
	}
	if len(tokens.byToken) != 0 {
		t.Fatal("no token record may exist after rejected issuance")
	}
}

func TestRecordIssuedToken_FixedTTL(t *testing.T) {
	t.Parallel()

	svc, users, tokens := newTestService(t)
	user := seedUser(t, users, "foo", "123456", 0)

	if err := svc.RecordIssuedToken(context.Background(), user, "tok-1"); err != nil {
		t.Fatalf("RecordIssuedToken error: %v", err)
	}

	record, ok := tokens.byToken["tok-1"]
	if !ok {
		t.Fatal("expected persisted record")
	}
	if record.UserID != user.ID {
		t.Fatalf("record owner: got %d want %d", record.UserID, user.ID)
	}
	if record.ID == "" {
		t.Fatal("expected record id")
	}
	if ttl := record.ExpiryTime.Sub(record.CreatedTime); ttl != time.Hour {
		t.Fatalf("record TTL: got %v want %v", ttl, time.Hour)
	}
}

func TestIsAuthenticated_CacheMissSkipsStore(t *testing.T) {
	t.Parallel()

	svc, _, tokens := newTestService(t)

	ok, err := svc.IsAuthenticated(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("IsAuthenticated error: %v", err)
	}
	if ok {
		t.Fatal("expected false for uncached token")
	}
	if tokens.lookups != 0 {
		t.Fatalf("record store consulted %d times on cache miss", tokens.lookups)
	}
}

func TestIsAuthenticated_RecordMissing(t *testing.T) {
	t.Parallel()

	svc, users, tokens := newTestService(t)
	user := seedUser(t, users, "foo", "123456", 0)

	if err := svc.RecordIssuedToken(context.Background(), user, "tok-1"); err != nil {
		t.Fatalf("RecordIssuedToken error: %v", err)
	}
	delete(tokens.byToken, "tok-1")

	ok, err := svc.IsAuthenticated(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("IsAuthenticated error: %v", err)
	}
	if ok {
		t.Fatal("expected false when durable record is gone")
	}
}

func TestIsAuthenticated_ExpiredRecord(t *testing.T) {
	t.Parallel()

	svc, users, tokens := newTestService(t)
	user := seedUser(t, users, "foo", "123456", 0)

	if err := svc.RecordIssuedToken(context.Background(), user, "tok-1"); err != nil {
		t.Fatalf("RecordIssuedToken error: %v", err)
	}
	tokens.byToken["tok-1"].ExpiryTime = time.Now().Add(-time.Millisecond)

	ok, err := svc.IsAuthenticated(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("IsAuthenticated error: %v", err)
	}
	if ok {
		t.Fatal("expected false for a record expired one millisecond ago")
	}
}

func TestIsAuthenticated_LiveSession(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestService(t)
	user := seedUser(t, users, "foo", "123456", 0)

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if err := svc.RecordIssuedToken(context.Background(), user, token); err != nil {
		t.Fatalf("RecordIssuedToken error: %v", err)
	}

	ok, err := svc.IsAuthenticated(context.Background(), token)
	if err != nil {
		t.Fatalf("IsAuthenticated error: %v", err)
	}
	if !ok {
		t.Fatal("expected true for freshly recorded token")
	}
}

func TestIssueToken_TwiceYieldsIndependentSessions(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestService(t)
	user := seedUser(t, users, "foo", "123456", 0)
	ctx := context.Background()

	first, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	second, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct token strings")
	}

	for _, token := range []string{first, second} {
		if err := svc.RecordIssuedToken(ctx, user, token); err != nil {
			t.Fatalf("RecordIssuedToken error: %v", err)
		}
	}
	for _, token := range []string{first, second} {
		ok, err := svc.IsAuthenticated(ctx, token)
		if err != nil {
			t.Fatalf("IsAuthenticated error: %v", err)
		}
		if !ok {
			t.Fatal("expected both issuances to be independently valid")
		}
	}
}

func TestRenew(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestService(t)
	user := seedUser(t, users, "foo", "123456", 0)
	ctx := context.Background()

	if _, err := svc.Renew(ctx, "never-issued"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("unknown token: got %v want ErrUnknownToken", err)
	}

	oldToken, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if err := svc.RecordIssuedToken(ctx, user, oldToken); err != nil {
		t.Fatalf("RecordIssuedToken error: %v", err)
	}

	newToken, err := svc.Renew(ctx, oldToken)
	if err != nil {
		t.Fatalf("Renew error: %v", err)
	}
	if newToken == "" || newToken == oldToken {
		t.Fatalf("expected a fresh token, got %q", newToken)
	}

	// The superseded token is not revoked; both stay valid until expiry.
	for _, token := range []string{oldToken, newToken} {
		ok, err := svc.IsAuthenticated(ctx, token)
		if err != nil {
			t.Fatalf("IsAuthenticated error: %v", err)
		}
		if !ok {
			t.Fatalf("token %q should remain valid after renewal", token)
		}
	}
}
