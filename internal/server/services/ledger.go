// Package services contains server-side business logic. Every public method
// runs as one transaction of the configured repomanager.Store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/logging"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/accounts"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/repomanager"
)

// LedgerService owns account balances and the fixed total supply.
type LedgerService struct {
	store  repomanager.Store
	logger logging.Logger
}

func NewLedgerService(store repomanager.Store, logger logging.Logger) *LedgerService {
	return &LedgerService{store: store, logger: logger.With("module", "ledger")}
}

// Genesis credits supply to issuer and records it as the total supply.
// It runs at most once; later calls report false and change nothing.
func (s *LedgerService) Genesis(ctx context.Context, issuer models.Identity, supply uint64) (bool, error) {
	if err := issuer.Validate(); err != nil {
		return false, err
	}
	if supply > uint64(models.MaxBalance) {
		return false, fmt.Errorf("%w: supply %d exceeds %d", common.ErrorValidation, supply, uint64(models.MaxBalance))
	}

	created := false
	err := s.store.Update(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		acc := repos.Accounts()
		_, err := acc.Meta(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		if err := acc.SetMeta(ctx, &models.LedgerMeta{Issuer: issuer, TotalSupply: models.Balance(supply)}); err != nil {
			return err
		}
		created = true
		return acc.SetBalance(ctx, issuer, models.Balance(supply))
	})
	if err != nil {
		return false, fmt.Errorf("genesis: %w", err)
	}
	if created {
		s.logger.Info(ctx, "genesis applied", "issuer", issuer, "supply", supply)
	}
	return created, nil
}

// TotalIssued is 0 before genesis.
func (s *LedgerService) TotalIssued(ctx context.Context) (models.Balance, error) {
	var total models.Balance
	err := s.store.View(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		meta, err := repos.Accounts().Meta(ctx)
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		total = meta.TotalSupply
		return nil
	})
	return total, err
}

func (s *LedgerService) BalanceOf(ctx context.Context, id models.Identity) (models.Balance, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}
	var b models.Balance
	err := s.store.View(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		b, err = repos.Accounts().Balance(ctx, id)
		return err
	})
	return b, err
}

// Transfer moves amount from caller to to without a balance precondition.
// A debit below zero aborts with common.ErrorBalanceUnderflow and leaves
// both balances untouched.
func (s *LedgerService) Transfer(ctx context.Context, caller, to models.Identity, amount models.Balance) error {
	return s.transfer(ctx, caller, to, amount, false)
}

// TransferChecked fails with common.ErrorInsufficientBalance when from holds
// less than amount.
func (s *LedgerService) TransferChecked(ctx context.Context, from, to models.Identity, amount models.Balance) error {
	return s.transfer(ctx, from, to, amount, true)
}

func (s *LedgerService) transfer(ctx context.Context, from, to models.Identity, amount models.Balance, checked bool) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	err := s.store.Update(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		return moveBalance(ctx, repos.Accounts(), from, to, amount, checked)
	})
	if err != nil {
		return err
	}
	s.logger.Debug(ctx, "transfer", "from", from, "to", to, "amount", amount, "checked", checked)
	return nil
}

// moveBalance debits from and credits to within the caller's transaction.
// Moving to oneself only runs the guards.
func moveBalance(ctx context.Context, acc accounts.Repository, from, to models.Identity, amount models.Balance, checked bool) error {
	fromBalance, err := acc.Balance(ctx, from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		if checked {
			return fmt.Errorf("%w: %s holds %d, needs %d", common.ErrorInsufficientBalance, from, fromBalance, amount)
		}
		return fmt.Errorf("%w: %s holds %d, debit %d", common.ErrorBalanceUnderflow, from, fromBalance, amount)
	}
	if from == to {
		return nil
	}

	toBalance, err := acc.Balance(ctx, to)
	if err != nil {
		return err
	}
	if toBalance > models.MaxBalance-amount {
		return fmt.Errorf("%w: crediting %d to %s", common.ErrorBalanceOverflow, amount, to)
	}

	if err := acc.SetBalance(ctx, from, fromBalance-amount); err != nil {
		return err
	}
	return acc.SetBalance(ctx, to, toBalance+amount)
}
