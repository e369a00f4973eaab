package keeper

import (
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalis-network/vocalis-core/testutils"
	"github.com/vocalis-network/vocalis-core/x/elections/exported"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// castVotes registers a fresh voter per entry in options, submits their
// commitment for that option and reveals the first few of them
func castVotes(t *testing.T, ctx sdk.Context, k Keeper, id uint64, options []string, reveals int) {
	for i, option := range options {
		voter := testutils.RandAddress()
		require.NoError(t, k.RegisterVoter(ctx, voter, testutils.RandBytes(exported.HashLength)))

		salt := testutils.RandBytes(exported.HashLength)
		require.NoError(t, k.SubmitVote(ctx, voter, id, exported.VoteCommitment(option, salt)))

		if i < reveals {
			require.NoError(t, k.RevealVote(ctx.WithBlockHeight(12), voter, id, option, salt))
		}
	}
}

func TestTally_CountsOnlyReveals(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("participation"))
	require.NoError(t, err)

	// three submissions, two reveals
	castVotes(t, ctx, k, id, []string{"yes", "yes", "no"}, 2)

	assert.EqualValues(t, 2, k.GetTally(ctx, id, "yes"))
	assert.EqualValues(t, 0, k.GetTally(ctx, id, "no"))

	assert.EqualValues(t, 2, k.RevealedCount(ctx, id))
}

func TestRevealedCount_SurvivesOptionRemoval(t *testing.T) {
	ctx, k, _ := setup(1)
	authority := testutils.RandAddress()
	initGovernance(ctx, k, authority)

	election := newElection("rewritten")
	election.Options = []string{"yes", "no"}
	id, err := k.CreateElection(ctx, authority, election)
	require.NoError(t, err)

	castVotes(t, ctx, k, id, []string{"yes", "no"}, 2)

	// the rewritten option list drops "no", but its counter stays behind
	require.NoError(t, k.UpdateElection(ctx, authority, id, "rewritten", election.MaxVoters, []string{"yes", "maybe"}))

	assert.EqualValues(t, 1, k.GetTally(ctx, id, "no"))
	assert.EqualValues(t, 2, k.RevealedCount(ctx, id))
}

func TestGetTally_UnknownOptionIsZero(t *testing.T) {
	ctx, k, _ := setup(1)
	assert.EqualValues(t, 0, k.GetTally(ctx, 42, "anything"))
}

func TestComputeWinner_DeclarationOrderBeatsVoteCount(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	election := newElection("ordered")
	election.Options = []string{"alpha", "beta"}
	id, err := k.CreateElection(ctx, testutils.RandAddress(), election)
	require.NoError(t, err)

	// alpha: 1 reveal, beta: 2 reveals, threshold 1
	castVotes(t, ctx, k, id, []string{"alpha", "beta", "beta"}, 3)

	winner, found, err := k.ComputeWinner(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alpha", winner)
}

func TestComputeWinner_NoneReachThreshold(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	election := newElection("undecided")
	election.Threshold = 5
	id, err := k.CreateElection(ctx, testutils.RandAddress(), election)
	require.NoError(t, err)

	castVotes(t, ctx, k, id, []string{"yes", "no"}, 2)

	_, found, err := k.ComputeWinner(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestComputeWinner_UnknownElection(t *testing.T) {
	ctx, k, _ := setup(1)

	_, _, err := k.ComputeWinner(ctx, 42)
	assert.True(t, errors.Is(err, types.ErrElectionNotFound))
}

func TestCheckQuorum(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	// max voters 10, quorum 50% -> 5 reveals required
	id, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("quorate"))
	require.NoError(t, err)

	err = k.CheckQuorum(ctx, id, 4)
	assert.True(t, errors.Is(err, types.ErrQuorumNotMet))

	assert.NoError(t, k.CheckQuorum(ctx, id, 5))
}

func TestCheckQuorum_TruncatesRequirement(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	election := newElection("truncated")
	election.MaxVoters = 7
	election.Quorum = 50
	id, err := k.CreateElection(ctx, testutils.RandAddress(), election)
	require.NoError(t, err)

	// 7 * 50 / 100 truncates to 3
	assert.NoError(t, k.CheckQuorum(ctx, id, 3))
	assert.True(t, errors.Is(k.CheckQuorum(ctx, id, 2), types.ErrQuorumNotMet))
}

func TestCheckQuorum_UnknownElection(t *testing.T) {
	ctx, k, _ := setup(1)

	err := k.CheckQuorum(ctx, 42, 10)
	assert.True(t, errors.Is(err, types.ErrElectionNotFound))
}
