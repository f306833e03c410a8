package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/sellerdesk/merchanthub/internal/domain/errors"
	"github.com/sellerdesk/merchanthub/internal/domain/model"
	"github.com/sellerdesk/merchanthub/internal/domain/repository"
)

// pgxPool is the pool surface Storage depends on. Satisfied by
// *pgxpool.Pool in production and by pgxmock pools in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type accountRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            account_id TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS merchant_accounts (
            account_id TEXT PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            business_name TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            charges_enabled BOOLEAN NOT NULL DEFAULT FALSE,
            payouts_enabled BOOLEAN NOT NULL DEFAULT FALSE,
            details_submitted BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_merchant_accounts_status ON merchant_accounts(status, updated_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, COALESCE(account_id, ''), created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.AccountID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, COALESCE(account_id, ''), created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.AccountID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) LinkAccount(ctx context.Context, userID int64, accountID string) error {
	const query = `UPDATE users SET account_id=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, accountID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- AccountRepository implementation ---

func (r *accountRepository) Create(ctx context.Context, userID int64, accountID string) (*model.MerchantAccount, error) {
	const query = `INSERT INTO merchant_accounts (account_id, user_id, status) VALUES ($1, $2, $3)
                   RETURNING created_at, updated_at`
	account := model.MerchantAccount{
		AccountID: accountID,
		UserID:    userID,
		Status:    model.AccountStatusPending,
	}
	err := r.storage.pool.QueryRow(ctx, query, accountID, userID, model.AccountStatusPending).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByUser(ctx context.Context, userID int64) (*model.MerchantAccount, error) {
	const query = `SELECT account_id, user_id, business_name, status, charges_enabled, payouts_enabled, details_submitted, created_at, updated_at
                   FROM merchant_accounts WHERE user_id=$1`
	var a model.MerchantAccount
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&a.AccountID, &a.UserID, &a.BusinessName, &a.Status, &a.ChargesEnabled, &a.PayoutsEnabled, &a.DetailsSubmitted, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) SetBusinessName(ctx context.Context, accountID, businessName string, status model.AccountStatus) error {
	const query = `UPDATE merchant_accounts SET business_name=$1, status=$2, updated_at=NOW() WHERE account_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, businessName, status, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *accountRepository) SelectBatchForSync(ctx context.Context, limit int) ([]model.MerchantAccount, error) {
	const selectQuery = `SELECT account_id, user_id, business_name, status, charges_enabled, payouts_enabled, details_submitted, created_at, updated_at
                         FROM merchant_accounts
                         WHERE status <> 'COMPLETE'
                         ORDER BY updated_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var accounts []model.MerchantAccount
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var a model.MerchantAccount
			if err := rows.Scan(&a.AccountID, &a.UserID, &a.BusinessName, &a.Status, &a.ChargesEnabled, &a.PayoutsEnabled, &a.DetailsSubmitted, &a.CreatedAt, &a.UpdatedAt); err != nil {
				return err
			}
			accounts = append(accounts, a)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		// Bump updated_at so concurrent pollers pick other rows first.
		for _, a := range accounts {
			if _, err := tx.Exec(ctx, `UPDATE merchant_accounts SET updated_at=NOW() WHERE account_id=$1`, a.AccountID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) UpdateCapabilities(ctx context.Context, caps *model.AccountCapabilities, status model.AccountStatus) error {
	const query = `UPDATE merchant_accounts
                   SET charges_enabled=$1, payouts_enabled=$2, details_submitted=$3, status=$4, updated_at=NOW()
                   WHERE account_id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, caps.ChargesEnabled, caps.PayoutsEnabled, caps.DetailsSubmitted, status, caps.AccountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
