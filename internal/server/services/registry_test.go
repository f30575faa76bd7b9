package services

import (
	"context"
	"testing"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterNode_FirstKeyWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.registry.RegisterNode(ctx, "n1", "k1")
	require.NoError(t, err)
	assert.Equal(t, models.Applied(), out)

	out, err = f.registry.RegisterNode(ctx, "n1", "k2")
	require.NoError(t, err)
	assert.Equal(t, models.Rejected(models.ReasonNodeAlreadyRegistered), out)

	node, err := f.registry.GetNode(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, &models.Node{ID: "n1", PublicKey: "k1"}, node)
}

func TestGetNode_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.registry.GetNode(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRegisterNode_RejectsEmptyCaller(t *testing.T) {
	f := newFixture(t)
	_, err := f.registry.RegisterNode(context.Background(), "", "k")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRegisterUser_SeedsIdleSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.registry.RegisterUser(ctx, "alice", "pkA", custodians("n1", "n2", "n3"))
	require.NoError(t, err)
	assert.True(t, out.Applied)

	user, err := f.registry.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "pkA", user.PublicKey)
	assert.Equal(t, [models.CustodianCount]models.Identity{"n1", "n2", "n3"}, user.CustodianIDs())

	assert.Equal(t, models.NewRecovery("alice"), f.session(t, "alice"))
}

func TestRegisterUser_CustodiansNeedNotBeRegisteredNodes(t *testing.T) {
	f := newFixture(t)

	out, err := f.registry.RegisterUser(context.Background(), "alice", "pkA", custodians("x", "y", "z"))
	require.NoError(t, err)
	assert.True(t, out.Applied)
}

func TestRegisterUser_RejectsEmptyCustodian(t *testing.T) {
	f := newFixture(t)

	_, err := f.registry.RegisterUser(context.Background(), "alice", "pkA", custodians("n1", "", "n3"))
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.registry.GetUser(context.Background(), "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRegisterUser_OverwriteResetsFinalizedSession(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, err := f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)
	_, err = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")
	require.NoError(t, err)
	res, err := f.recovery.SubmitConfirmation(ctx, "n2", "alice", "p2")
	require.NoError(t, err)
	require.True(t, res.Finalized)

	_, err = f.registry.RegisterUser(ctx, "alice", "pkA2", custodians("m1", "m2", "m3"))
	require.NoError(t, err)

	assert.Equal(t, models.NewRecovery("alice"), f.session(t, "alice"))
	user, err := f.registry.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "pkA2", user.PublicKey)
	assert.Equal(t, models.Identity("m1"), user.Custodians[0].NodeID)
}

func TestRegister_RejectsNulInPublicKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.registry.RegisterNode(ctx, "n1", "k\x00")
	require.ErrorIs(t, err, common.ErrorValidation)
	_, err = f.registry.GetNode(ctx, "n1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.registry.RegisterUser(ctx, "alice", "pk\x00A", custodians("n1", "n2", "n3"))
	require.ErrorIs(t, err, common.ErrorValidation)
	_, err = f.registry.GetUser(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
