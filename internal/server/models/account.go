package models

// LedgerMeta is written once at genesis.
type LedgerMeta struct {
	Issuer      Identity
	TotalSupply Balance
}
