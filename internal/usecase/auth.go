package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/sellerdesk/merchanthub/internal/domain/errors"
	"github.com/sellerdesk/merchanthub/internal/domain/model"
	"github.com/sellerdesk/merchanthub/internal/domain/repository"
	pkgAuth "github.com/sellerdesk/merchanthub/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and session token management.
// Registration also provisions a connected account at the payments
// platform and links it to the user.
type AuthUseCase struct {
	users    repository.UserRepository
	accounts repository.AccountRepository
	platform PaymentsGateway
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	demoMode bool
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, accounts repository.AccountRepository, platform PaymentsGateway, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, demoMode bool) *AuthUseCase {
	return &AuthUseCase{users: users, accounts: accounts, platform: platform, hasher: hasher, tokens: strategy, demoMode: demoMode}
}

// Register creates a new user, provisions a connected account for them,
// and returns a session token. Credential validation collects all
// violations before failing.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)

	var messages []string
	messages = append(messages, ValidateEmail(email)...)
	messages = append(messages, ValidatePassword(password)...)
	if err := domainErrors.NewValidation(messages); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	accountID, err := u.platform.CreateAccount(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("provision connected account: %w", err)
	}

	if err := u.users.LinkAccount(ctx, usr.ID, accountID); err != nil {
		return nil, "", err
	}
	usr.AccountID = accountID

	if _, err := u.accounts.Create(ctx, usr.ID, accountID); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// DemoEmail returns a generated placeholder address used to pre-fill the
// registration form. Only available while demo mode is on.
func (u *AuthUseCase) DemoEmail() (string, error) {
	if !u.demoMode {
		return "", domainErrors.ErrDemoDisabled
	}
	return fmt.Sprintf("demo-%s@example.com", uuid.NewString()[:8]), nil
}
