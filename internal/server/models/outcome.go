package models

// RejectReason names the guard that turned an operation into a no-op.
type RejectReason string

const (
	ReasonInsufficientReserve   RejectReason = "insufficient_reserve"
	ReasonSessionNotFound       RejectReason = "session_not_found"
	ReasonUserNotFound          RejectReason = "user_not_found"
	ReasonSessionNotActive      RejectReason = "session_not_active"
	ReasonNotACustodian         RejectReason = "not_a_custodian"
	ReasonNodeAlreadyRegistered RejectReason = "node_already_registered"
)

// Outcome tells whether a guarded operation changed state. A rejected
// outcome is not an error: callers see a successful no-op, but the reason
// stays observable.
type Outcome struct {
	Applied bool
	Reason  RejectReason
}

func Applied() Outcome {
	return Outcome{Applied: true}
}

func Rejected(reason RejectReason) Outcome {
	return Outcome{Reason: reason}
}

func (o Outcome) String() string {
	if o.Applied {
		return "applied"
	}
	return "rejected: " + string(o.Reason)
}
