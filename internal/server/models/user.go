package models

// CustodianCount is the number of custodians assigned to every user.
const CustodianCount = 3

// Custodian assigns one secret share to a node. Condition is a tag
// interpreted off-system.
type Custodian struct {
	Condition uint8
	NodeID    Identity
}

// User is someone who stored a secret with three custodians.
type User struct {
	ID         Identity
	PublicKey  string
	Custodians [CustodianCount]Custodian
}

// SlotOf returns the index of the first custodian slot held by node.
func (u User) SlotOf(node Identity) (int, bool) {
	for i, c := range u.Custodians {
		if c.NodeID == node {
			return i, true
		}
	}
	return -1, false
}

// CustodianIDs lists the node identities in slot order.
func (u User) CustodianIDs() [CustodianCount]Identity {
	var ids [CustodianCount]Identity
	for i, c := range u.Custodians {
		ids[i] = c.NodeID
	}
	return ids
}
