package models

// Node is a custodian machine holding one share of a user's secret.
// It is created on first registration and never changed afterwards.
type Node struct {
	ID        Identity
	PublicKey string
}
