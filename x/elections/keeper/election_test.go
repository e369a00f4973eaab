package keeper

import (
	"errors"
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalis-network/vocalis-core/testutils"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

func TestCreateElection(t *testing.T) {
	ctx, k, _ := setup(7)
	creator := testutils.RandAddress()
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, creator, newElection("Vote2025"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, id)
	assert.EqualValues(t, 1, k.GetElectionCount(ctx))

	election, ok := k.GetElection(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "Vote2025", election.Name)
	assert.EqualValues(t, 7, election.CreatedAt)
	assert.EqualValues(t, 0, election.UpdatedAt)
	assert.Equal(t, creator, election.Creator)
	assert.True(t, election.Open)

	byName, ok := k.GetElectionByName(ctx, "Vote2025")
	require.True(t, ok)
	assert.Equal(t, election, byName)

	// ids are assigned sequentially
	id, err = k.CreateElection(ctx, creator, newElection("Vote2026"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)
}

func TestCreateElection_NameMustBeUnique(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	_, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("Vote2025"))
	require.NoError(t, err)

	_, err = k.CreateElection(ctx, testutils.RandAddress(), newElection("Vote2025"))
	assert.True(t, errors.Is(err, types.ErrElectionAlreadyExists))
	assert.EqualValues(t, 1, k.GetElectionCount(ctx))
}

func TestCreateElection_CapacityCheckedFirst(t *testing.T) {
	ctx, k, _ := setup(1)
	authority := testutils.RandAddress()
	require.NoError(t, k.SetAuthority(ctx, authority))
	require.NoError(t, k.SetMaxElections(ctx, authority, 2))

	for i := 0; i < 2; i++ {
		_, err := k.CreateElection(ctx, testutils.RandAddress(), newElection(fmt.Sprintf("election %d", i)))
		require.NoError(t, err)
	}

	// the cap check runs before field validation, so even a broken election
	// reports the capacity error
	broken := newElection("over capacity")
	broken.Duration = 0
	_, err := k.CreateElection(ctx, testutils.RandAddress(), broken)
	assert.True(t, errors.Is(err, types.ErrMaxElectionsExceeded))
}

func TestCreateElection_FieldBoundsInDeclarationOrder(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	election := newElection("bounds")
	election.Options = []string{}
	election.Duration = -5

	// options precede duration in the declared field order
	_, err := k.CreateElection(ctx, testutils.RandAddress(), election)
	assert.True(t, errors.Is(err, types.ErrInvalidOptions))

	election.Options = []string{"yes", "no"}
	_, err = k.CreateElection(ctx, testutils.RandAddress(), election)
	assert.True(t, errors.Is(err, types.ErrInvalidDuration))
}

func TestCreateElection_RequiresAuthority(t *testing.T) {
	ctx, k, _ := setup(1)
	k.setMaxElections(ctx, 100)

	_, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("no authority"))
	assert.True(t, errors.Is(err, types.ErrAuthorityNotVerified))
}

func TestCreateElection_TransfersFee(t *testing.T) {
	ctx, k, bank := setup(1)
	authority := testutils.RandAddress()
	creator := testutils.RandAddress()
	initGovernance(ctx, k, authority)

	fee := sdk.NewInt64Coin(types.DefaultFeeDenom, 1000)
	require.NoError(t, k.SetCreationFee(ctx, authority, fee))

	_, err := k.CreateElection(ctx, creator, newElection("paid"))
	require.NoError(t, err)

	require.Len(t, bank.Transfers, 1)
	assert.Equal(t, creator, bank.Transfers[0].From)
	assert.Equal(t, authority, bank.Transfers[0].To)
	assert.Equal(t, sdk.NewCoins(fee), bank.Transfers[0].Amount)
}

func TestCreateElection_ZeroFeeSkipsTransfer(t *testing.T) {
	ctx, k, bank := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	_, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("free"))
	require.NoError(t, err)
	assert.Empty(t, bank.Transfers)
}

func TestCreateElection_FailedFeeAbortsCreation(t *testing.T) {
	ctx, k, bank := setup(1)
	authority := testutils.RandAddress()
	initGovernance(ctx, k, authority)
	require.NoError(t, k.SetCreationFee(ctx, authority, sdk.NewInt64Coin(types.DefaultFeeDenom, 1000)))

	bank.SendCoinsFunc = func(sdk.Context, sdk.AccAddress, sdk.AccAddress, sdk.Coins) error {
		return fmt.Errorf("insufficient funds")
	}

	_, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("unpaid"))
	assert.Error(t, err)
	assert.EqualValues(t, 0, k.GetElectionCount(ctx))
	assert.False(t, k.ExistsName(ctx, "unpaid"))
}

func TestUpdateElection(t *testing.T) {
	ctx, k, _ := setup(3)
	creator := testutils.RandAddress()
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, creator, newElection("old name"))
	require.NoError(t, err)

	ctx = ctx.WithBlockHeight(9)
	require.NoError(t, k.UpdateElection(ctx, creator, id, "new name", 20, []string{"a", "b", "c"}))

	election, ok := k.GetElection(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "new name", election.Name)
	assert.EqualValues(t, 20, election.MaxVoters)
	assert.Equal(t, []string{"a", "b", "c"}, election.Options)
	assert.EqualValues(t, 9, election.UpdatedAt)
	assert.EqualValues(t, 3, election.CreatedAt)

	// the old name is released, the new one resolves
	assert.False(t, k.ExistsName(ctx, "old name"))
	byName, ok := k.GetElectionByName(ctx, "new name")
	require.True(t, ok)
	assert.Equal(t, election, byName)

	record, ok := k.GetUpdateRecord(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "new name", record.NewName)
	assert.EqualValues(t, 20, record.NewMaxVoters)
	assert.EqualValues(t, 9, record.UpdatedAt)
	assert.Equal(t, creator, record.UpdatedBy)
}

func TestUpdateElection_Permissions(t *testing.T) {
	ctx, k, _ := setup(1)
	creator := testutils.RandAddress()
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, creator, newElection("guarded"))
	require.NoError(t, err)

	err = k.UpdateElection(ctx, creator, id+1, "renamed", 10, []string{"yes", "no"})
	assert.True(t, errors.Is(err, types.ErrElectionNotFound))

	err = k.UpdateElection(ctx, testutils.RandAddress(), id, "renamed", 10, []string{"yes", "no"})
	assert.True(t, errors.Is(err, types.ErrNotAuthorized))
}

func TestUpdateElection_RejectsEmptyUpdate(t *testing.T) {
	ctx, k, _ := setup(1)
	creator := testutils.RandAddress()
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, creator, newElection("unchanged"))
	require.NoError(t, err)

	err = k.UpdateElection(ctx, creator, id, "", 0, nil)
	assert.True(t, errors.Is(err, types.ErrInvalidUpdateParam))
}

func TestUpdateElection_RenameCollision(t *testing.T) {
	ctx, k, _ := setup(1)
	creator := testutils.RandAddress()
	initGovernance(ctx, k, testutils.RandAddress())

	first, err := k.CreateElection(ctx, creator, newElection("first"))
	require.NoError(t, err)
	_, err = k.CreateElection(ctx, creator, newElection("second"))
	require.NoError(t, err)

	err = k.UpdateElection(ctx, creator, first, "second", 10, []string{"yes", "no"})
	assert.True(t, errors.Is(err, types.ErrElectionAlreadyExists))

	// renaming to the election's own current name is a permitted no-op
	assert.NoError(t, k.UpdateElection(ctx, creator, first, "first", 15, []string{"yes", "no"}))
	assert.True(t, k.ExistsName(ctx, "first"))
}
