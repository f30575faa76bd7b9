package models

import (
	"strings"
	"testing"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/stretchr/testify/assert"
)

func testUser() User {
	return User{
		ID:        "alice",
		PublicKey: "pk-alice",
		Custodians: [CustodianCount]Custodian{
			{Condition: 0, NodeID: "n1"},
			{Condition: 1, NodeID: "n2"},
			{Condition: 2, NodeID: "n3"},
		},
	}
}

func TestUser_SlotOf(t *testing.T) {
	u := testUser()

	slot, ok := u.SlotOf("n2")
	assert.True(t, ok)
	assert.Equal(t, 1, slot)

	_, ok = u.SlotOf("mallory")
	assert.False(t, ok)
}

func TestUser_SlotOf_FirstMatchWins(t *testing.T) {
	u := testUser()
	u.Custodians[2].NodeID = "n1"

	slot, ok := u.SlotOf("n1")
	assert.True(t, ok)
	assert.Equal(t, 0, slot)
}

func TestUser_CustodianIDs(t *testing.T) {
	assert.Equal(t, [CustodianCount]Identity{"n1", "n2", "n3"}, testUser().CustodianIDs())
}

func TestIdentity_Validate(t *testing.T) {
	assert.NoError(t, Identity("5GrwvaEF").Validate())
	assert.ErrorIs(t, Identity("").Validate(), common.ErrorValidation)
	assert.ErrorIs(t, Identity("   ").Validate(), common.ErrorValidation)
	assert.ErrorIs(t, Identity(strings.Repeat("x", MaxIdentityLength+1)).Validate(), common.ErrorValidation)
	assert.ErrorIs(t, Identity("al\x00ice").Validate(), common.ErrorValidation)
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText("proof", ""))
	assert.NoError(t, ValidateText("proof", "0xdeadbeef ünïcode"))

	err := ValidateText("proof", "ab\x00cd")
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "proof contains a NUL byte")

	assert.ErrorIs(t, ValidateText("public key", "\xff\xfe"), common.ErrorValidation)
}

func TestOutcome(t *testing.T) {
	assert.True(t, Applied().Applied)
	assert.Equal(t, "applied", Applied().String())

	o := Rejected(ReasonNotACustodian)
	assert.False(t, o.Applied)
	assert.Equal(t, "rejected: not_a_custodian", o.String())
}
