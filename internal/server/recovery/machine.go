// Package recovery holds the threshold recovery rules as pure functions.
// Callers load the records, ask for a Decision and persist it inside one
// transaction; nothing here touches storage.
package recovery

import "github.com/keysafe-protocol/keysafe/internal/server/models"

const (
	// ConfirmationThreshold is the number of distinct custodian
	// confirmations that finalizes a round.
	ConfirmationThreshold = 2

	RewardPerCustodian models.Balance = 1

	// RecoveryReserve is what a user must hold to open a round and what the
	// finalization pays out in total.
	RecoveryReserve = models.CustodianCount * RewardPerCustodian
)

// Decision is the result of applying one request to a session.
type Decision struct {
	Outcome models.Outcome
	// Next is the session to store. It is meaningful only when Persist is set.
	Next    models.Recovery
	Persist bool
	// Finalize means Next closes the round and Payouts are due.
	Finalize bool
	// PayoutPending means the threshold is reached but the user cannot fund
	// the payouts yet. The confirmation is stored and the round stays active.
	PayoutPending bool
}

func reject(reason models.RejectReason) Decision {
	return Decision{Outcome: models.Rejected(reason)}
}

// Start opens a new round for the caller. The reserve is checked before
// the session lookup.
func Start(callerBalance models.Balance, session *models.Recovery) Decision {
	if callerBalance < RecoveryReserve {
		return reject(models.ReasonInsufficientReserve)
	}
	if session == nil {
		return reject(models.ReasonSessionNotFound)
	}
	return Decision{
		Outcome: models.Applied(),
		Next:    session.WithResetConfirmations(),
		Persist: true,
	}
}

// Confirm records caller's confirmation for user's active round.
// userBalance is the balance of the user being recovered; it funds the
// payouts, so the round only finalizes when it covers RecoveryReserve.
// Otherwise the confirmation is applied with PayoutPending set and the round
// stays active until a later confirmation finds it funded.
func Confirm(user *models.User, session *models.Recovery, caller models.Identity, proof string, userBalance models.Balance) Decision {
	switch {
	case user == nil:
		return reject(models.ReasonUserNotFound)
	case session == nil:
		return reject(models.ReasonSessionNotFound)
	case session.Status != models.RecoveryActive:
		return reject(models.ReasonSessionNotActive)
	}

	slot, ok := user.SlotOf(caller)
	if !ok {
		return reject(models.ReasonNotACustodian)
	}

	next := session.WithConfirmation(slot, proof)
	if next.ConfirmedCount() < ConfirmationThreshold {
		return Decision{Outcome: models.Applied(), Next: next, Persist: true}
	}

	if userBalance < RecoveryReserve {
		return Decision{Outcome: models.Applied(), Next: next, Persist: true, PayoutPending: true}
	}

	return Decision{
		Outcome:  models.Applied(),
		Next:     next.WithFinalized(),
		Persist:  true,
		Finalize: true,
	}
}

// Payout is one reward transfer from the recovered user to a custodian.
type Payout struct {
	From   models.Identity
	To     models.Identity
	Amount models.Balance
}

// Payouts lists the rewards of a finalized round: one per custodian slot,
// in slot order, whether or not that custodian confirmed.
func Payouts(user models.User) []Payout {
	out := make([]Payout, 0, models.CustodianCount)
	for _, c := range user.Custodians {
		out = append(out, Payout{From: user.ID, To: c.NodeID, Amount: RewardPerCustodian})
	}
	return out
}
