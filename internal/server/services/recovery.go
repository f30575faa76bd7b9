package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/logging"
	"github.com/keysafe-protocol/keysafe/internal/server/archive"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/recovery"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/repomanager"
)

// ConfirmationResult reports a SubmitConfirmation call.
type ConfirmationResult struct {
	models.Outcome
	// Finalized is set when this confirmation closed the round and the
	// custodians were paid.
	Finalized bool
	// PayoutPending is set when the confirmation reached the threshold but
	// the user's balance could not fund the payouts. The round stays active.
	PayoutPending bool
	Session       models.Recovery
}

// RecoveryService drives recovery sessions through recovery's rules and
// pays custodians on finalization.
type RecoveryService struct {
	store    repomanager.Store
	archiver archive.Archiver
	logger   logging.Logger
	now      func() time.Time
}

func NewRecoveryService(store repomanager.Store, archiver archive.Archiver, logger logging.Logger) *RecoveryService {
	if archiver == nil {
		archiver = archive.Noop{}
	}
	return &RecoveryService{
		store:    store,
		archiver: archiver,
		logger:   logger.With("module", "recovery"),
		now:      time.Now,
	}
}

// getOptional maps common.ErrorNotFound to a nil record.
func getOptional[T any](rec *T, err error) (*T, error) {
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return rec, err
}

// StartRecovery opens a new round for the caller's own session.
func (s *RecoveryService) StartRecovery(ctx context.Context, caller models.Identity) (models.Outcome, error) {
	if err := caller.Validate(); err != nil {
		return models.Outcome{}, err
	}

	var d recovery.Decision
	err := s.store.Update(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		balance, err := repos.Accounts().Balance(ctx, caller)
		if err != nil {
			return err
		}
		session, err := getOptional(repos.Recoveries().Get(ctx, caller))
		if err != nil {
			return err
		}

		d = recovery.Start(balance, session)
		if !d.Persist {
			return nil
		}
		return repos.Recoveries().Save(ctx, &d.Next)
	})
	if err != nil {
		return models.Outcome{}, fmt.Errorf("start recovery: %w", err)
	}

	if d.Outcome.Applied {
		s.logger.Info(ctx, "recovery started", "user", caller, "completions", d.Next.TotalCompletions)
	} else {
		s.logger.Debug(ctx, "start recovery rejected", "user", caller, "reason", d.Outcome.Reason)
	}
	return d.Outcome, nil
}

// SubmitConfirmation records that caller, a custodian of userID, confirms
// the active round with proof. The proof is stored, never verified.
func (s *RecoveryService) SubmitConfirmation(ctx context.Context, caller, userID models.Identity, proof string) (ConfirmationResult, error) {
	if err := caller.Validate(); err != nil {
		return ConfirmationResult{}, err
	}
	if err := userID.Validate(); err != nil {
		return ConfirmationResult{}, err
	}
	if err := models.ValidateText("proof", proof); err != nil {
		return ConfirmationResult{}, err
	}

	var (
		d    recovery.Decision
		user *models.User
	)
	err := s.store.Update(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		user, err = getOptional(repos.Users().Get(ctx, userID))
		if err != nil {
			return err
		}
		session, err := getOptional(repos.Recoveries().Get(ctx, userID))
		if err != nil {
			return err
		}
		balance, err := repos.Accounts().Balance(ctx, userID)
		if err != nil {
			return err
		}

		d = recovery.Confirm(user, session, caller, proof, balance)
		if !d.Persist {
			return nil
		}
		if err := repos.Recoveries().Save(ctx, &d.Next); err != nil {
			return err
		}
		if !d.Finalize {
			return nil
		}
		for _, p := range recovery.Payouts(*user) {
			if err := moveBalance(ctx, repos.Accounts(), p.From, p.To, p.Amount, true); err != nil {
				return fmt.Errorf("payout to %s: %w", p.To, err)
			}
		}
		return nil
	})
	if err != nil {
		return ConfirmationResult{}, fmt.Errorf("submit confirmation: %w", err)
	}

	res := ConfirmationResult{Outcome: d.Outcome, Finalized: d.Finalize, PayoutPending: d.PayoutPending, Session: d.Next}
	switch {
	case d.Finalize:
		s.logger.Info(ctx, "recovery finalized", "user", userID, "round", d.Next.TotalCompletions, "confirmer", caller)
		s.archive(ctx, *user, d.Next)
	case d.PayoutPending:
		s.logger.Warn(ctx, "finalization waits for funds", "user", userID, "custodian", caller, "confirmed", d.Next.ConfirmedCount())
	case d.Outcome.Applied:
		s.logger.Info(ctx, "confirmation recorded", "user", userID, "custodian", caller, "confirmed", d.Next.ConfirmedCount())
	default:
		s.logger.Debug(ctx, "confirmation rejected", "user", userID, "custodian", caller, "reason", d.Outcome.Reason)
	}
	return res, nil
}

// archiveTimeout bounds the post-commit upload.
const archiveTimeout = 10 * time.Second

// archive runs after commit; a failure is only logged. The upload is
// detached from the request so a client hanging up does not drop the receipt.
func (s *RecoveryService) archive(ctx context.Context, user models.User, session models.Recovery) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()

	r := archive.NewReceipt(user, session, recovery.RewardPerCustodian, s.now())
	if err := s.archiver.Archive(ctx, r); err != nil {
		s.logger.Warn(ctx, "receipt archive failed", "user", user.ID, "round", session.TotalCompletions, "error", err)
		return
	}
	s.logger.Debug(ctx, "receipt archived", "key", r.Key())
}

func (s *RecoveryService) GetSession(ctx context.Context, userID models.Identity) (*models.Recovery, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	var session *models.Recovery
	err := s.store.View(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		session, err = repos.Recoveries().Get(ctx, userID)
		return err
	})
	return session, err
}
