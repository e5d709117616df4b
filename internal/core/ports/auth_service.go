package ports

import (
	"context"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role is optional
// and defaults to WORKER.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     domain.Role
}

type AuthService interface {
	// Register creates a user and returns a freshly issued token alongside it.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login exchanges credentials for a token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
