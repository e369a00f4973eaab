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

// ballotSetup creates an election at height 1 with a 10 block voting window and
// a 20 block reveal window, plus one registered voter
func ballotSetup(t *testing.T) (sdk.Context, Keeper, uint64, sdk.AccAddress) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("ballots"))
	require.NoError(t, err)

	voter := testutils.RandAddress()
	require.NoError(t, k.RegisterVoter(ctx, voter, testutils.RandBytes(exported.HashLength)))

	return ctx, k, id, voter
}

func TestSubmitVote(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)
	commitment := exported.VoteCommitment("yes", testutils.RandBytes(exported.HashLength))

	require.NoError(t, k.SubmitVote(ctx, voter, id, commitment))

	vote, ok := k.GetVote(ctx, id, voter)
	require.True(t, ok)
	assert.Equal(t, commitment, vote.Commitment)
	assert.False(t, vote.Revealed)
	assert.Empty(t, vote.Choice)

	assert.True(t, k.GetVotedIndex(ctx, voter).Has(id))
}

func TestSubmitVote_RequiresRegistration(t *testing.T) {
	ctx, k, id, _ := ballotSetup(t)

	err := k.SubmitVote(ctx, testutils.RandAddress(), id, testutils.RandBytes(exported.HashLength))
	assert.True(t, errors.Is(err, types.ErrNotRegistered))
}

func TestSubmitVote_UnknownElection(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)

	err := k.SubmitVote(ctx, voter, id+1, testutils.RandBytes(exported.HashLength))
	assert.True(t, errors.Is(err, types.ErrElectionNotFound))
}

func TestSubmitVote_WindowBoundary(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)
	commitment := testutils.RandBytes(exported.HashLength)

	// the voting window is inclusive on both ends: created at 1, duration 10
	err := k.SubmitVote(ctx.WithBlockHeight(12), voter, id, commitment)
	assert.True(t, errors.Is(err, types.ErrVotingClosed))

	assert.NoError(t, k.SubmitVote(ctx.WithBlockHeight(11), voter, id, commitment))
}

func TestSubmitVote_OncePerElection(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)
	commitment := testutils.RandBytes(exported.HashLength)

	require.NoError(t, k.SubmitVote(ctx, voter, id, commitment))

	err := k.SubmitVote(ctx, voter, id, testutils.RandBytes(exported.HashLength))
	assert.True(t, errors.Is(err, types.ErrAlreadyVoted))

	// the first commitment is immutable
	vote, _ := k.GetVote(ctx, id, voter)
	assert.Equal(t, commitment, vote.Commitment)
}

func TestRevealVote(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)
	salt := testutils.RandBytes(exported.HashLength)
	require.NoError(t, k.SubmitVote(ctx, voter, id, exported.VoteCommitment("yes", salt)))

	ctx = ctx.WithBlockHeight(12)
	require.NoError(t, k.RevealVote(ctx, voter, id, "yes", salt))

	vote, ok := k.GetVote(ctx, id, voter)
	require.True(t, ok)
	assert.True(t, vote.Revealed)
	assert.Equal(t, "yes", vote.Choice)
	assert.Equal(t, salt, vote.Salt)

	assert.EqualValues(t, 1, k.GetTally(ctx, id, "yes"))

	err := k.RevealVote(ctx, voter, id, "yes", salt)
	assert.True(t, errors.Is(err, types.ErrAlreadyRevealed))
	assert.EqualValues(t, 1, k.GetTally(ctx, id, "yes"))
}

func TestRevealVote_ChecksCommitmentBeforeWindow(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)
	salt := testutils.RandBytes(exported.HashLength)
	require.NoError(t, k.SubmitVote(ctx, voter, id, exported.VoteCommitment("yes", salt)))

	// a mismatched commitment is reported even outside the reveal window
	err := k.RevealVote(ctx.WithBlockHeight(50), voter, id, "no", salt)
	assert.True(t, errors.Is(err, types.ErrInvalidCommitment))

	err = k.RevealVote(ctx.WithBlockHeight(50), voter, id, "yes", testutils.RandBytes(exported.HashLength))
	assert.True(t, errors.Is(err, types.ErrInvalidCommitment))
}

func TestRevealVote_RejectsUndeclaredOption(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)
	salt := testutils.RandBytes(exported.HashLength)
	require.NoError(t, k.SubmitVote(ctx, voter, id, exported.VoteCommitment("maybe", salt)))

	// the commitment matches, but "maybe" was never declared
	err := k.RevealVote(ctx.WithBlockHeight(12), voter, id, "maybe", salt)
	assert.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRevealVote_WindowBoundary(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)
	salt := testutils.RandBytes(exported.HashLength)
	require.NoError(t, k.SubmitVote(ctx, voter, id, exported.VoteCommitment("yes", salt)))

	// voting ends at height 11; the reveal window is (11, 31]
	err := k.RevealVote(ctx.WithBlockHeight(11), voter, id, "yes", salt)
	assert.True(t, errors.Is(err, types.ErrRevealNotOpen))

	err = k.RevealVote(ctx.WithBlockHeight(32), voter, id, "yes", salt)
	assert.True(t, errors.Is(err, types.ErrRevealNotOpen))

	assert.NoError(t, k.RevealVote(ctx.WithBlockHeight(31), voter, id, "yes", salt))
}

func TestRevealVote_NoSubmission(t *testing.T) {
	ctx, k, id, voter := ballotSetup(t)

	err := k.RevealVote(ctx.WithBlockHeight(12), voter, id, "yes", testutils.RandBytes(exported.HashLength))
	assert.True(t, errors.Is(err, types.ErrVoteNotFound))
}
