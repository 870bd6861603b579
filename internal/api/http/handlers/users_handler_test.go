package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
)

type stubAuthenticator struct {
	ok bool
}

func (s stubAuthenticator) IsAuthenticated(context.Context, string) (bool, error) {
	return s.ok, nil
}

// decodeCode reads just the envelope code and message, regardless of the
// payload shape in data.
func decodeCode(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()

	var envelope struct {
		ErrorCode int    `json:"errorCode"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return envelope.ErrorCode, envelope.Message
}

func newUsersTestApp(t *testing.T, authorized bool) (*fiber.App, *fakeUserRepo) {
	t.Helper()

	users := &fakeUserRepo{byUserName: make(map[string]*domain.User)}
	guard := auth.SessionGuard(auth.NewSessionValidator(stubAuthenticator{ok: authorized}))

	app := fiber.New()
	group := app.Group("/user", guard)
	handler := NewUsersHandler(users, 4)
	group.Get("/", handler.List)
	return app, users
}

// A failed verdict short-circuits before any entity logic runs.
func TestUsersList_RejectedWithoutSession(t *testing.T) {
	t.Parallel()

	app, users := newUsersTestApp(t, false)

	cases := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "missing header", header: "", wantCode: domain.CodeMissingHeader},
		{name: "short bearer", header: "BEA", wantCode: domain.CodeInvalidBearer},
		{name: "stale token", header: "Bearer 123456789", wantCode: domain.CodeInvalidSession},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/user/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", tc.name, err)
		}
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("%s: status got %d want %d", tc.name, resp.StatusCode, http.StatusForbidden)
		}
		code, _ := decodeCode(t, resp)
		if code != tc.wantCode {
			t.Fatalf("%s: errorCode got %d want %d", tc.name, code, tc.wantCode)
		}
	}

	if users.listCalls != 0 {
		t.Fatalf("repository consulted %d times without a valid session", users.listCalls)
	}
}

func TestUsersList_WithSession(t *testing.T) {
	t.Parallel()

	app, users := newUsersTestApp(t, true)
	seedUser(t, users, "foo", "123456", 0)

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer 123456789")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusOK)
	}
	code, message := decodeCode(t, resp)
	if code != 0 || message != "Success" {
		t.Fatalf("unexpected envelope: code %d message %q", code, message)
	}
	if users.listCalls != 1 {
		t.Fatalf("expected one repository call, got %d", users.listCalls)
	}
}
