package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sellerdesk/merchanthub/internal/adapter/payments"
	"github.com/sellerdesk/merchanthub/internal/domain/model"
)

// MerchantFacade exposes the subset of application functionality required by the worker.
type MerchantFacade interface {
	AccountsForSync(ctx context.Context, limit int) ([]model.MerchantAccount, error)
	CheckAccount(ctx context.Context, accountID string) (*model.AccountCapabilities, error)
	UpdateAccountStatus(ctx context.Context, caps *model.AccountCapabilities, current model.AccountStatus) error
}

// AccountSyncer polls the payments platform for connected account
// verification state and mirrors it into local storage. It stands in
// for platform webhooks, which this service does not receive.
type AccountSyncer struct {
	facade       MerchantFacade
	syncInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.MerchantAccount
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewAccountSyncer constructs account syncer worker pool.
func NewAccountSyncer(facade MerchantFacade, syncInterval time.Duration, batchSize, workers int, logger *slog.Logger) *AccountSyncer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &AccountSyncer{
		facade:       facade,
		syncInterval: syncInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.MerchantAccount, batchSize*workers),
	}
}

// Start launches background processing.
func (s *AccountSyncer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *AccountSyncer) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *AccountSyncer) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *AccountSyncer) fetchAndDispatch(ctx context.Context) {
	accounts, err := s.facade.AccountsForSync(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch accounts for sync failed", slog.String("error", err.Error()))
		return
	}
	for _, account := range accounts {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- account:
		}
	}
}

func (s *AccountSyncer) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case account, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handleAccount(ctx, account)
		}
	}
}

func (s *AccountSyncer) handleAccount(ctx context.Context, account model.MerchantAccount) {
	caps, err := s.facade.CheckAccount(ctx, account.AccountID)
	if err != nil {
		switch e := err.(type) {
		case payments.TooManyRequestsError:
			s.logger.Warn("payments api rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, payments.ErrAccountNotFound) {
				s.logger.Warn("account missing at platform", slog.String("account", account.AccountID))
				return
			}
			s.logger.Error("account check failed", slog.String("account", account.AccountID), slog.String("error", err.Error()))
		}
		return
	}

	if err := s.facade.UpdateAccountStatus(ctx, caps, account.Status); err != nil {
		s.logger.Error("update account status failed", slog.String("account", account.AccountID), slog.String("error", err.Error()))
	}
}
