// Package archive writes an audit receipt for every finalized recovery round
// to S3-compatible object storage.
package archive

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"golang.org/x/crypto/blake2b"
)

// Receipt records who took part in a finalized round. Proofs are stored as
// BLAKE2b-256 digests; an unconfirmed slot has an empty digest.
type Receipt struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Round              uint32    `json:"round"`
	Custodians         []string  `json:"custodians"`
	Confirmed          []bool    `json:"confirmed"`
	ProofDigests       []string  `json:"proof_digests"`
	RewardPerCustodian uint64    `json:"reward_per_custodian"`
	FinalizedAt        time.Time `json:"finalized_at"`
}

// NewReceipt describes the finalized session rec of user. Round is the
// session's completion count after finalization.
func NewReceipt(user models.User, rec models.Recovery, reward models.Balance, at time.Time) Receipt {
	r := Receipt{
		ID:                 uuid.NewString(),
		UserID:             string(user.ID),
		Round:              rec.TotalCompletions,
		Custodians:         make([]string, 0, models.CustodianCount),
		Confirmed:          make([]bool, 0, models.CustodianCount),
		ProofDigests:       make([]string, 0, models.CustodianCount),
		RewardPerCustodian: uint64(reward),
		FinalizedAt:        at.UTC(),
	}
	for i, c := range user.Custodians {
		slot := rec.Slots[i]
		r.Custodians = append(r.Custodians, string(c.NodeID))
		r.Confirmed = append(r.Confirmed, slot.Confirmed)
		r.ProofDigests = append(r.ProofDigests, proofDigest(slot))
	}
	return r
}

func proofDigest(slot models.ConfirmationSlot) string {
	if !slot.Confirmed {
		return ""
	}
	sum := blake2b.Sum256([]byte(slot.Proof))
	return hex.EncodeToString(sum[:])
}

// Key is the object key of the receipt. The user id is escaped into a
// single path segment.
func (r Receipt) Key() string {
	return fmt.Sprintf("receipts/%s/%d-%s.json", keySegment(r.UserID), r.Round, r.ID)
}

func keySegment(s string) string {
	seg := url.PathEscape(s)
	if seg == "." || seg == ".." {
		seg = strings.ReplaceAll(seg, ".", "%2E")
	}
	return seg
}
