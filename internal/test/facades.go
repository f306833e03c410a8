package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	CurrentUserFn  func(context.Context, int64) (*model.User, error)
	DemoEmailFn    func() (string, error)
}

// Register returns user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, AccountID: "acct_1"}, "token", nil
}

// Authenticate returns user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, AccountID: "acct_1"}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CurrentUser returns the configured session user.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com", AccountID: "acct_1"}, nil
}

// DemoEmail returns the configured placeholder address.
func (s AuthFacadeStub) DemoEmail() (string, error) {
	if s.DemoEmailFn != nil {
		return s.DemoEmailFn()
	}
	return "demo-12345678@example.com", nil
}

// OnboardingFacadeStub provides controllable behaviour for onboarding endpoints.
type OnboardingFacadeStub struct {
	OnboardFn func(context.Context, int64, string, *bool) (string, error)
	AccountFn func(context.Context, int64) (*model.MerchantAccount, error)
}

// Onboard delegates to provided function or returns a default redirect.
func (s OnboardingFacadeStub) Onboard(ctx context.Context, userID int64, businessName string, skipOnboarding *bool) (string, error) {
	if s.OnboardFn != nil {
		return s.OnboardFn(ctx, userID, businessName, skipOnboarding)
	}
	return "https://connect.example.com/setup/acct_1", nil
}

// Account returns configured merchant account state.
func (s OnboardingFacadeStub) Account(ctx context.Context, userID int64) (*model.MerchantAccount, error) {
	if s.AccountFn != nil {
		return s.AccountFn(ctx, userID)
	}
	return &model.MerchantAccount{AccountID: "acct_1", UserID: userID, Status: model.AccountStatusPending}, nil
}

// MerchantFacadeStub aggregates facade dependencies for HTTP layer tests.
type MerchantFacadeStub struct {
	AuthFacadeStub
	OnboardingFacadeStub
}

// AccountUpdateCall records an UpdateAccount invocation on the gateway stub.
type AccountUpdateCall struct {
	AccountID string
	Params    *model.AccountParams
}

// AccountLinkCall records a CreateAccountLink invocation on the gateway stub.
type AccountLinkCall struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}

// PaymentsGatewayStub simulates the payments platform and records calls.
type PaymentsGatewayStub struct {
	CreateAccountFn     func(context.Context, string) (string, error)
	UpdateAccountFn     func(context.Context, string, *model.AccountParams) error
	CreateAccountLinkFn func(context.Context, string, string, string) (string, error)
	GetAccountFn        func(context.Context, string) (*model.AccountCapabilities, error)

	mu          sync.Mutex
	CreateCalls []string
	UpdateCalls []AccountUpdateCall
	LinkCalls   []AccountLinkCall
}

// Lock exposes internal mutex for external synchronization.
func (s *PaymentsGatewayStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *PaymentsGatewayStub) Unlock() { s.mu.Unlock() }

// CreateAccount records the call and returns a deterministic account ID.
func (s *PaymentsGatewayStub) CreateAccount(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	s.CreateCalls = append(s.CreateCalls, email)
	s.mu.Unlock()
	if s.CreateAccountFn != nil {
		return s.CreateAccountFn(ctx, email)
	}
	return "acct_test", nil
}

// UpdateAccount records the update payload.
func (s *PaymentsGatewayStub) UpdateAccount(ctx context.Context, accountID string, params *model.AccountParams) error {
	s.mu.Lock()
	s.UpdateCalls = append(s.UpdateCalls, AccountUpdateCall{AccountID: accountID, Params: params})
	s.mu.Unlock()
	if s.UpdateAccountFn != nil {
		return s.UpdateAccountFn(ctx, accountID, params)
	}
	return nil
}

// CreateAccountLink records the call and returns a hosted onboarding URL.
func (s *PaymentsGatewayStub) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	s.mu.Lock()
	s.LinkCalls = append(s.LinkCalls, AccountLinkCall{AccountID: accountID, RefreshURL: refreshURL, ReturnURL: returnURL})
	s.mu.Unlock()
	if s.CreateAccountLinkFn != nil {
		return s.CreateAccountLinkFn(ctx, accountID, refreshURL, returnURL)
	}
	return "https://connect.example.com/setup/" + accountID, nil
}

// GetAccount returns configured capabilities or an all-false default.
func (s *PaymentsGatewayStub) GetAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error) {
	if s.GetAccountFn != nil {
		return s.GetAccountFn(ctx, accountID)
	}
	return &model.AccountCapabilities{AccountID: accountID}, nil
}

// StatusUpdateCall stores information about UpdateAccountStatus invocations.
type StatusUpdateCall struct {
	Caps    *model.AccountCapabilities
	Current model.AccountStatus
}

// SyncFacadeStub mimics worker interactions with the merchant facade.
type SyncFacadeStub struct {
	Batches   [][]model.MerchantAccount
	BatchesFn func(context.Context, int) ([]model.MerchantAccount, error)
	CheckFn   func(context.Context, string) (*model.AccountCapabilities, error)
	UpdateFn  func(context.Context, *model.AccountCapabilities, model.AccountStatus) error
	Updates   []StatusUpdateCall

	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *SyncFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SyncFacadeStub) Unlock() { s.mu.Unlock() }

// AccountsForSync returns batches from configured queue.
func (s *SyncFacadeStub) AccountsForSync(ctx context.Context, limit int) ([]model.MerchantAccount, error) {
	if s.BatchesFn != nil {
		return s.BatchesFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// CheckAccount returns configured capability data.
func (s *SyncFacadeStub) CheckAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, accountID)
	}
	return &model.AccountCapabilities{AccountID: accountID, ChargesEnabled: true, PayoutsEnabled: true, DetailsSubmitted: true}, nil
}

// UpdateAccountStatus records update requests.
func (s *SyncFacadeStub) UpdateAccountStatus(ctx context.Context, caps *model.AccountCapabilities, current model.AccountStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, caps, current)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, StatusUpdateCall{Caps: caps, Current: current})
	return nil
}
