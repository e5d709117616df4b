package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

type stubAuthService struct {
	registerIn  ports.RegisterInput
	registerErr error
	loginEmail  string
	loginPass   string
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	s.registerIn = in
	if s.registerErr != nil {
		return "", nil, s.registerErr
	}
	role := in.Role
	if role == "" {
		role = domain.RoleWorker
	}
	return "token-123", &domain.User{ID: 1, Name: in.Name, Email: in.Email, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.loginEmail = email
	s.loginPass = password
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "token-456", &domain.User{ID: 1, Email: email, Role: domain.RoleWorker}, nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"pw123456","role":"MANAGER"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registerIn.Role != domain.RoleManager {
		t.Fatalf("role not forwarded, got %q", svc.registerIn.Role)
	}

	out := decodeEnvelope(t, rec)
	if out["success"] != true {
		t.Fatalf("expected success envelope, got %v", out)
	}
	data := out["data"].(map[string]any)
	if data["token"] != "token-123" {
		t.Fatalf("missing token in response: %v", data)
	}
	user := data["user"].(map[string]any)
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never appear in responses")
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []string{
		`{`,
		`{"name":"A","email":"not-an-email","password":"pw123456"}`,
		`{"name":"A","email":"a@x.com","password":"short"}`,
		`{"name":"A","email":"a@x.com","password":"pw123456","role":"SUPERUSER"}`,
	}
	for i, body := range cases {
		c, _ := newTestContext(http.MethodPost, "/auth/register", body)
		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400 HTTPError, got %v", i, err)
		}
	}
}

func TestAuthHandler_Register_ServiceError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	c, _ := newTestContext(http.MethodPost, "/auth/register", `{"name":"A","email":"a@x.com","password":"pw123456"}`)
	// Domain errors pass through untouched for the central error handler.
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"pw123456"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.loginEmail != "alice@example.com" || svc.loginPass != "pw123456" {
		t.Fatalf("credentials not forwarded: %q %q", svc.loginEmail, svc.loginPass)
	}

	out := decodeEnvelope(t, rec)
	data := out["data"].(map[string]any)
	if data["token"] != "token-456" {
		t.Fatalf("missing token in response: %v", data)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong1"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
