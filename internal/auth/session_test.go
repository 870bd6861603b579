package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/storefront-service/internal/domain"
)

type fakeAuthenticator struct {
	calls      int
	lastToken  string
	authorized bool
	err        error
}

func (f *fakeAuthenticator) IsAuthenticated(_ context.Context, token string) (bool, error) {
	f.calls++
	f.lastToken = token
	return f.authorized, f.err
}

func TestValidate_MissingHeader(t *testing.T) {
	t.Parallel()

	fake := &fakeAuthenticator{authorized: true}
	validator := NewSessionValidator(fake)

	for _, headers := range []map[string][]string{
		{},
		{"Content-Type": {"application/json"}},
		{"Authorization": {}},
	} {
		verdict, err := validator.Validate(context.Background(), headers)
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if verdict.Valid {
			t.Fatal("expected invalid verdict")
		}
		if verdict.ErrorCode != domain.CodeMissingHeader {
			t.Fatalf("errorCode: got %d want %d", verdict.ErrorCode, domain.CodeMissingHeader)
		}
		if verdict.Message != "Missing Authorization header" {
			t.Fatalf("unexpected message %q", verdict.Message)
		}
	}
	if fake.calls != 0 {
		t.Fatalf("authenticator consulted %d times for missing headers", fake.calls)
	}
}

func TestValidate_ShortBearerValue(t *testing.T) {
	t.Parallel()

	fake := &fakeAuthenticator{authorized: true}
	validator := NewSessionValidator(fake)

	for _, value := range []string{"", "BEA", "Bearer"} {
		verdict, err := validator.Validate(context.Background(),
			map[string][]string{"Authorization": {value}})
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if verdict.ErrorCode != domain.CodeInvalidBearer {
			t.Fatalf("value %q: errorCode got %d want %d", value, verdict.ErrorCode, domain.CodeInvalidBearer)
		}
		if verdict.Message != "Invalid bearer received" {
			t.Fatalf("unexpected message %q", verdict.Message)
		}
	}
	if fake.calls != 0 {
		t.Fatalf("authenticator consulted %d times for malformed bearers", fake.calls)
	}
}

func TestValidate_UnauthorizedToken(t *testing.T) {
	t.Parallel()

	fake := &fakeAuthenticator{authorized: false}
	validator := NewSessionValidator(fake)

	verdict, err := validator.Validate(context.Background(),
		map[string][]string{"Authorization": {"Bearer 123456789"}})
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if verdict.Valid {
		t.Fatal("expected invalid verdict")
	}
	if verdict.ErrorCode != domain.CodeInvalidSession {
		t.Fatalf("errorCode: got %d want %d", verdict.ErrorCode, domain.CodeInvalidSession)
	}
	if fake.lastToken != "123456789" {
		t.Fatalf("authenticator received %q, want stripped token", fake.lastToken)
	}
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeAuthenticator{authorized: true}
	validator := NewSessionValidator(fake)

	verdict, err := validator.Validate(context.Background(),
		map[string][]string{"Authorization": {"Bearer 123456789"}})
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !verdict.Valid {
		t.Fatal("expected valid verdict")
	}
	if verdict.ErrorCode != domain.CodeSuccess || verdict.Message != "Success" {
		t.Fatalf("unexpected verdict %+v", verdict)
	}
	if verdict.Payload != "123456789" {
		t.Fatalf("payload: got %q want raw token", verdict.Payload)
	}
}

func TestValidate_StoreFaultPropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store unreachable")
	validator := NewSessionValidator(&fakeAuthenticator{err: storeErr})

	_, err := validator.Validate(context.Background(),
		map[string][]string{"Authorization": {"Bearer 123456789"}})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store fault to propagate, got %v", err)
	}
}
