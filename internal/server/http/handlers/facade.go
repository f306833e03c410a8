package handlers

import (
	"context"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
	DemoEmail() (string, error)
}

// OnboardingFacade encapsulates connected account operations exposed via HTTP.
type OnboardingFacade interface {
	Onboard(ctx context.Context, userID int64, businessName string, skipOnboarding *bool) (string, error)
	Account(ctx context.Context, userID int64) (*model.MerchantAccount, error)
}

// MerchantFacade aggregates the full set of operations used across handlers.
type MerchantFacade interface {
	AuthFacade
	OnboardingFacade
}
