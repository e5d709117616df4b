package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

func newAuthService() (*AuthService, *stubUserRepo, *TokenService) {
	repo := newStubUserRepo()
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens), repo, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, tokens := newAuthService()

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw123456",
		Role:     domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == 0 {
		t.Fatalf("expected user with id, got %+v", user)
	}
	if user.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	p, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if p.UserID != user.ID || p.Email != user.Email || p.Role != domain.RoleManager {
		t.Fatalf("token principal mismatch: %+v", p)
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	svc, _, _ := newAuthService()

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleWorker {
		t.Fatalf("expected default role WORKER, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newAuthService()

	cases := []ports.RegisterInput{
		{Email: "a@x.com", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@x.com"},
		{Name: "A", Email: "a@x.com", Password: "pw", Role: "SUPERUSER"},
	}
	for i, in := range cases {
		if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newAuthService()

	in := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pw123456"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, tokens := newAuthService()

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret99", Role: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user")
	}

	p, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if p.Role != domain.RoleAdmin {
		t.Fatalf("expected role ADMIN, got %s", p.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthService()

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass",
	})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	// Unknown accounts must be indistinguishable from wrong passwords.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_CorruptStoredHash(t *testing.T) {
	svc, repo, _ := newAuthService()

	repo.users["broken@example.com"] = &domain.User{
		ID:           7,
		Name:         "Broken",
		Email:        "broken@example.com",
		PasswordHash: "not-a-bcrypt-hash",
		Role:         domain.RoleWorker,
	}

	// A corrupt stored hash must reject, not crash.
	if _, _, err := svc.Login(context.Background(), "broken@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_HashesDiffer(t *testing.T) {
	svc, repo, _ := newAuthService()

	// Fresh salt per call: same password, different stored hashes.
	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "A", Email: "a1@x.com", Password: "samepw99"})
	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "B", Email: "a2@x.com", Password: "samepw99"})

	h1 := repo.users["a1@x.com"].PasswordHash
	h2 := repo.users["a2@x.com"].PasswordHash
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for identical passwords")
	}
}
