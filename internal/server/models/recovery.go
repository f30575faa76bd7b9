package models

import "fmt"

// RecoveryStatus is the lifecycle state of a recovery round.
type RecoveryStatus uint8

const (
	RecoveryIdle RecoveryStatus = iota
	RecoveryActive
	RecoveryFinalized
)

func (s RecoveryStatus) String() string {
	switch s {
	case RecoveryIdle:
		return "idle"
	case RecoveryActive:
		return "active"
	case RecoveryFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the three known states.
func (s RecoveryStatus) Valid() bool {
	return s <= RecoveryFinalized
}

// ConfirmationSlot holds one custodian's attestation for the current round.
type ConfirmationSlot struct {
	Proof     string
	Confirmed bool
}

// Recovery is the per-user session record. There is exactly one per user.
type Recovery struct {
	UserID           Identity
	Status           RecoveryStatus
	TotalCompletions uint32
	Slots            [CustodianCount]ConfirmationSlot
}

// NewRecovery returns the idle session seeded at user registration.
func NewRecovery(user Identity) Recovery {
	return Recovery{UserID: user, Status: RecoveryIdle}
}

// WithResetConfirmations opens a new round: status becomes Active and every
// slot is cleared. TotalCompletions is kept.
func (r Recovery) WithResetConfirmations() Recovery {
	return Recovery{
		UserID:           r.UserID,
		Status:           RecoveryActive,
		TotalCompletions: r.TotalCompletions,
	}
}

// WithConfirmation marks slot as confirmed and stores proof, replacing any
// earlier proof for that slot.
func (r Recovery) WithConfirmation(slot int, proof string) Recovery {
	next := r
	next.Slots[slot] = ConfirmationSlot{Proof: proof, Confirmed: true}
	return next
}

// WithFinalized closes the round and counts it.
func (r Recovery) WithFinalized() Recovery {
	next := r
	next.Status = RecoveryFinalized
	next.TotalCompletions = r.TotalCompletions + 1
	return next
}

// ConfirmedCount is the number of confirmed slots, 0 to CustodianCount.
func (r Recovery) ConfirmedCount() int {
	n := 0
	for _, s := range r.Slots {
		if s.Confirmed {
			n++
		}
	}
	return n
}
