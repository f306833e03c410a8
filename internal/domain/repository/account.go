package repository

import (
	"context"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// AccountRepository tracks connected accounts mirrored from the payments platform.
type AccountRepository interface {
	Create(ctx context.Context, userID int64, accountID string) (*model.MerchantAccount, error)
	GetByUser(ctx context.Context, userID int64) (*model.MerchantAccount, error)
	SetBusinessName(ctx context.Context, accountID, businessName string, status model.AccountStatus) error
	SelectBatchForSync(ctx context.Context, limit int) ([]model.MerchantAccount, error)
	UpdateCapabilities(ctx context.Context, caps *model.AccountCapabilities, status model.AccountStatus) error
}
