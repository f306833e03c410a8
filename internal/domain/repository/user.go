package repository

import (
	"context"

	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// UserRepository persists registered users.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	LinkAccount(ctx context.Context, userID int64, accountID string) error
}
