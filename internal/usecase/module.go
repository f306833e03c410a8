package usecase

import (
	"go.uber.org/fx"

	"github.com/sellerdesk/merchanthub/internal/config"
	"github.com/sellerdesk/merchanthub/internal/domain/repository"
	pkgAuth "github.com/sellerdesk/merchanthub/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	newOnboardingUseCase,
)

type authParams struct {
	fx.In

	Users    repository.UserRepository
	Accounts repository.AccountRepository
	Platform PaymentsGateway
	Hasher   pkgAuth.PasswordHasher
	Strategy pkgAuth.Strategy
	Config   *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Accounts, p.Platform, p.Hasher, p.Strategy, p.Config.DemoMode)
}

type onboardingParams struct {
	fx.In

	Users    repository.UserRepository
	Accounts repository.AccountRepository
	Platform PaymentsGateway
	Config   *config.Config
}

func newOnboardingUseCase(p onboardingParams) *OnboardingUseCase {
	return NewOnboardingUseCase(p.Users, p.Accounts, p.Platform, p.Config.DemoMode, p.Config.AppBaseURL)
}
