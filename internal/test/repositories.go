package test

import (
	"context"

	domainErrors "github.com/sellerdesk/merchanthub/internal/domain/errors"
	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// LinkAccount stores connected account identifier on the user.
func (s *UserRepositoryStub) LinkAccount(ctx context.Context, userID int64, accountID string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.AccountID = accountID
	return nil
}

// AccountRepositoryStub stores merchant accounts in-memory for tests.
type AccountRepositoryStub struct {
	Accounts map[string]*model.MerchantAccount
	ByUser   map[int64]*model.MerchantAccount
	Err      error
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		Accounts: make(map[string]*model.MerchantAccount),
		ByUser:   make(map[int64]*model.MerchantAccount),
	}
}

// Create registers merchant account unless already exists.
func (s *AccountRepositoryStub) Create(ctx context.Context, userID int64, accountID string) (*model.MerchantAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Accounts[accountID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	account := &model.MerchantAccount{AccountID: accountID, UserID: userID, Status: model.AccountStatusPending}
	s.Accounts[accountID] = account
	s.ByUser[userID] = account
	return account, nil
}

// GetByUser fetches account by owner or returns not found.
func (s *AccountRepositoryStub) GetByUser(ctx context.Context, userID int64) (*model.MerchantAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByUser[userID]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SetBusinessName updates the stored business name and status.
func (s *AccountRepositoryStub) SetBusinessName(ctx context.Context, accountID, businessName string, status model.AccountStatus) error {
	if s.Err != nil {
		return s.Err
	}
	account, ok := s.Accounts[accountID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	account.BusinessName = businessName
	account.Status = status
	return nil
}

// SelectBatchForSync returns all non-complete accounts up to limit.
func (s *AccountRepositoryStub) SelectBatchForSync(ctx context.Context, limit int) ([]model.MerchantAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var batch []model.MerchantAccount
	for _, account := range s.Accounts {
		if account.Status == model.AccountStatusComplete {
			continue
		}
		batch = append(batch, *account)
		if len(batch) >= limit {
			break
		}
	}
	return batch, nil
}

// UpdateCapabilities stores refreshed platform flags and status.
func (s *AccountRepositoryStub) UpdateCapabilities(ctx context.Context, caps *model.AccountCapabilities, status model.AccountStatus) error {
	if s.Err != nil {
		return s.Err
	}
	account, ok := s.Accounts[caps.AccountID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	account.ChargesEnabled = caps.ChargesEnabled
	account.PayoutsEnabled = caps.PayoutsEnabled
	account.DetailsSubmitted = caps.DetailsSubmitted
	account.Status = status
	return nil
}
