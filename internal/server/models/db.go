// Package models defines server-side data models persisted by the
// repositories. Records are replaced whole on write; partial updates are
// built by the named With* methods, which copy unchanged fields forward.
package models

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/keysafe-protocol/keysafe/internal/common"
)

// Identity is an opaque handle naming an account, user or custodian node.
// It is supplied by the caller's access token and never interpreted.
type Identity string

// MaxIdentityLength bounds identities accepted at the API edge.
const MaxIdentityLength = 256

// Validate rejects empty or oversized identities.
func (id Identity) Validate() error {
	s := strings.TrimSpace(string(id))
	if s == "" {
		return fmt.Errorf("%w: empty identity", common.ErrorValidation)
	}
	if len(id) > MaxIdentityLength {
		return fmt.Errorf("%w: identity longer than %d bytes", common.ErrorValidation, MaxIdentityLength)
	}
	return ValidateText("identity", string(id))
}

// ValidateText rejects values a TEXT column cannot hold: NUL bytes and
// invalid UTF-8.
func ValidateText(field, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %s contains a NUL byte", common.ErrorValidation, field)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s is not valid UTF-8", common.ErrorValidation, field)
	}
	return nil
}

func (id Identity) String() string {
	return string(id)
}

// Balance is an unsigned amount of ledger units.
type Balance uint64

// MaxBalance is the largest amount the ledger stores. The whole supply is
// capped at this value at genesis, so no single balance can exceed it.
const MaxBalance Balance = math.MaxInt64
