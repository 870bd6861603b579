package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		UserName: "foo",
		Email:    "foo@mail.com",
		Status:   0,
	}
}

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	token, expiresAt, err := tm.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "42")
	}
	if claims.Name != "foo" || claims.Email != "foo@mail.com" {
		t.Fatalf("identity claims mismatch: %+v", claims)
	}
	if !claims.ExpiresAt.Time.Equal(expiresAt.Truncate(time.Second)) {
		t.Fatalf("embedded expiry %v does not match returned expiry %v", claims.ExpiresAt.Time, expiresAt)
	}
}

func TestGenerate_DistinctTokensForSameUser(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)
	user := testUser()

	first, _, err := tm.Generate(user)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	second, _, err := tm.Generate(user)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct token strings for back-to-back issuance")
	}
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("right-secret", time.Hour).Generate(testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", time.Hour).Parse(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestParse_RejectsMalformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	for _, input := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := tm.Parse(input); err == nil {
			t.Fatalf("expected error for input %q", input)
		}
	}
}

func TestParse_RejectsTamperedPayload(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	if _, err := tm.Parse(strings.Join(parts, ".")); err == nil {
		t.Fatal("expected error for tampered payload")
	}
}

// The codec does not enforce expiry; an expired but well-signed token still
// parses. Expiry is the authorization service's call against the record store.
func TestParse_AcceptsExpiredToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Millisecond)
	token, _, err := tm.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("expected expired token to parse, got: %v", err)
	}
	if !claims.ExpiresAt.Time.Before(time.Now()) {
		t.Fatal("expected embedded expiry in the past")
	}
}
