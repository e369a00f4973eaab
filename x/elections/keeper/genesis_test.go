package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalis-network/vocalis-core/testutils"
	"github.com/vocalis-network/vocalis-core/x/elections/exported"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

func TestGenesisRoundtrip(t *testing.T) {
	ctx, k, _ := setup(1)
	authority := testutils.RandAddress()
	initGovernance(ctx, k, authority)
	require.NoError(t, k.SetCreationFee(ctx, authority, sdk.NewInt64Coin(types.DefaultFeeDenom, 500)))

	creator := testutils.RandAddress()
	id, err := k.CreateElection(ctx, creator, newElection("exported"))
	require.NoError(t, err)
	require.NoError(t, k.UpdateElection(ctx, creator, id, "exported v2", 15, []string{"yes", "no"}))

	voters := []sdk.AccAddress{testutils.RandAddress(), testutils.RandAddress()}
	for _, voter := range voters {
		require.NoError(t, k.RegisterVoter(ctx, voter, testutils.RandBytes(exported.HashLength)))
	}
	require.NoError(t, k.DelegateVote(ctx, voters[0], voters[1]))

	salt := testutils.RandBytes(exported.HashLength)
	require.NoError(t, k.SubmitVote(ctx, voters[0], id, exported.VoteCommitment("yes", salt)))
	require.NoError(t, k.SubmitVote(ctx, voters[1], id, exported.VoteCommitment("no", testutils.RandBytes(exported.HashLength))))
	require.NoError(t, k.RevealVote(ctx.WithBlockHeight(12), voters[0], id, "yes", salt))

	exportedState := k.ExportGenesis(ctx)
	require.NoError(t, exportedState.Validate())

	// import into a fresh store and compare the exports
	ctx2, k2, _ := setup(1)
	k2.InitGenesis(ctx2, exportedState)
	reexported := k2.ExportGenesis(ctx2)

	assert.Equal(t, exportedState, reexported)

	// spot check the imported state through the keeper api
	imported, ok := k2.GetAuthority(ctx2)
	require.True(t, ok)
	assert.Equal(t, authority, imported)
	assert.EqualValues(t, 1, k2.GetElectionCount(ctx2))
	assert.True(t, k2.IsRegistered(ctx2, voters[0]))
	assert.EqualValues(t, 1, k2.GetTally(ctx2, id, "yes"))

	vote, ok := k2.GetVote(ctx2, id, voters[0])
	require.True(t, ok)
	assert.True(t, vote.Revealed)
	assert.Equal(t, "yes", vote.Choice)
}

func TestExportGenesis_KeepsTalliesForRemovedOptions(t *testing.T) {
	ctx, k, _ := setup(1)
	authority := testutils.RandAddress()
	initGovernance(ctx, k, authority)

	election := newElection("shrinking")
	election.Options = []string{"yes", "no"}
	id, err := k.CreateElection(ctx, authority, election)
	require.NoError(t, err)

	castVotes(t, ctx, k, id, []string{"yes", "no"}, 2)

	// drop "no" from the declared options; its counter must still be exported
	require.NoError(t, k.UpdateElection(ctx, authority, id, "shrinking", election.MaxVoters, []string{"yes"}))

	exportedState := k.ExportGenesis(ctx)
	require.NoError(t, exportedState.Validate())
	assert.Contains(t, exportedState.Tallies, types.TallyEntry{ElectionID: id, Option: "no", Count: 1})
	assert.Contains(t, exportedState.Tallies, types.TallyEntry{ElectionID: id, Option: "yes", Count: 1})

	ctx2, k2, _ := setup(1)
	k2.InitGenesis(ctx2, exportedState)
	assert.EqualValues(t, 1, k2.GetTally(ctx2, id, "no"))
	assert.EqualValues(t, 2, k2.RevealedCount(ctx2, id))
}

func TestInitGenesis_Default(t *testing.T) {
	ctx, k, _ := setup(1)
	k.InitGenesis(ctx, types.DefaultGenesis())

	_, ok := k.GetAuthority(ctx)
	assert.False(t, ok)
	assert.EqualValues(t, types.DefaultMaxElections, k.GetMaxElections(ctx))
	assert.EqualValues(t, 0, k.GetElectionCount(ctx))
	assert.True(t, k.GetCreationFee(ctx).IsZero())
}
