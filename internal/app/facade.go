package app

import (
	"context"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
	"github.com/sellerdesk/merchanthub/internal/usecase"
)

// MerchantFacade aggregates the use cases behind a single surface
// consumed by the HTTP handlers and the sync worker.
type MerchantFacade struct {
	auth       *usecase.AuthUseCase
	onboarding *usecase.OnboardingUseCase
}

func NewMerchantFacade(auth *usecase.AuthUseCase, onboarding *usecase.OnboardingUseCase) *MerchantFacade {
	return &MerchantFacade{auth: auth, onboarding: onboarding}
}

func (f *MerchantFacade) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *MerchantFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MerchantFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MerchantFacade) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *MerchantFacade) DemoEmail() (string, error) {
	return f.auth.DemoEmail()
}

func (f *MerchantFacade) Onboard(ctx context.Context, userID int64, businessName string, skipOnboarding *bool) (string, error) {
	return f.onboarding.Onboard(ctx, userID, businessName, skipOnboarding)
}

func (f *MerchantFacade) Account(ctx context.Context, userID int64) (*model.MerchantAccount, error) {
	return f.onboarding.Account(ctx, userID)
}

func (f *MerchantFacade) AccountsForSync(ctx context.Context, limit int) ([]model.MerchantAccount, error) {
	return f.onboarding.AccountsForSync(ctx, limit)
}

func (f *MerchantFacade) CheckAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error) {
	return f.onboarding.CheckAccount(ctx, accountID)
}

func (f *MerchantFacade) UpdateAccountStatus(ctx context.Context, caps *model.AccountCapabilities, current model.AccountStatus) error {
	return f.onboarding.UpdateAccountStatus(ctx, caps, current)
}
