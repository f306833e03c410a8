package usecase

import (
	"context"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// PaymentsGateway is the subset of the payments platform API the use
// cases depend on. Satisfied by the payments adapter client.
type PaymentsGateway interface {
	CreateAccount(ctx context.Context, email string) (string, error)
	UpdateAccount(ctx context.Context, accountID string, params *model.AccountParams) error
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	GetAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error)
}
