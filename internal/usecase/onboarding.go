package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/sellerdesk/merchanthub/internal/domain/errors"
	"github.com/sellerdesk/merchanthub/internal/domain/model"
	"github.com/sellerdesk/merchanthub/internal/domain/repository"
)

// OnboardingUseCase drives connected account onboarding: it updates the
// account's business profile at the payments platform and produces the
// redirect target the client should navigate to next.
type OnboardingUseCase struct {
	users      repository.UserRepository
	accounts   repository.AccountRepository
	platform   PaymentsGateway
	demoMode   bool
	appBaseURL string
}

// NewOnboardingUseCase constructs OnboardingUseCase.
func NewOnboardingUseCase(users repository.UserRepository, accounts repository.AccountRepository, platform PaymentsGateway, demoMode bool, appBaseURL string) *OnboardingUseCase {
	return &OnboardingUseCase{users: users, accounts: accounts, platform: platform, demoMode: demoMode, appBaseURL: appBaseURL}
}

// Onboard validates the request, pushes the account update, and returns
// the redirect URL. In demo mode the update carries placeholder
// verification data, and skip=true short-circuits to the app home page
// without requesting a hosted onboarding link.
func (u *OnboardingUseCase) Onboard(ctx context.Context, userID int64, businessName string, skipOnboarding *bool) (string, error) {
	messages := ValidateBusinessName(businessName)
	if u.demoMode && skipOnboarding == nil {
		messages = append(messages, "skip onboarding choice is required in demo mode")
	}
	if err := domainErrors.NewValidation(messages); err != nil {
		return "", err
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if usr.AccountID == "" {
		return "", domainErrors.ErrAccountNotLinked
	}

	params := &model.AccountParams{BusinessName: businessName}
	if u.demoMode {
		applyDemoVerification(params, usr.Email)
	}

	if err := u.platform.UpdateAccount(ctx, usr.AccountID, params); err != nil {
		return "", fmt.Errorf("update connected account: %w", err)
	}

	if err := u.accounts.SetBusinessName(ctx, usr.AccountID, businessName, model.AccountStatusOnboarding); err != nil {
		return "", err
	}

	if u.demoMode && *skipOnboarding {
		return u.appBaseURL, nil
	}

	link, err := u.platform.CreateAccountLink(
		ctx,
		usr.AccountID,
		u.appBaseURL+"/onboarding/refresh",
		u.appBaseURL+"/onboarding/complete",
	)
	if err != nil {
		return "", fmt.Errorf("create onboarding link: %w", err)
	}
	return link, nil
}

// Account returns the locally tracked state of the user's connected account.
func (u *OnboardingUseCase) Account(ctx context.Context, userID int64) (*model.MerchantAccount, error) {
	account, err := u.accounts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrAccountNotLinked
		}
		return nil, err
	}
	return account, nil
}

// AccountsForSync selects accounts whose platform status should be refreshed.
func (u *OnboardingUseCase) AccountsForSync(ctx context.Context, limit int) ([]model.MerchantAccount, error) {
	return u.accounts.SelectBatchForSync(ctx, limit)
}

// CheckAccount queries the payments platform for current capabilities.
func (u *OnboardingUseCase) CheckAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error) {
	return u.platform.GetAccount(ctx, accountID)
}

// UpdateAccountStatus stores refreshed capabilities and derived status.
func (u *OnboardingUseCase) UpdateAccountStatus(ctx context.Context, caps *model.AccountCapabilities, current model.AccountStatus) error {
	return u.accounts.UpdateCapabilities(ctx, caps, model.DeriveStatus(caps, current))
}
