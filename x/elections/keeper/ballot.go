package keeper

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// SubmitVote stores a binding commitment for (election, voter).
// A voter gets exactly one submission per election; the commitment is immutable
// once stored. The voting window is [created, created+duration] inclusive.
func (k Keeper) SubmitVote(ctx sdk.Context, voter sdk.AccAddress, electionID uint64, commitment []byte) error {
	if !k.IsRegistered(ctx, voter) {
		return types.ErrNotRegistered
	}

	election, ok := k.GetElection(ctx, electionID)
	if !ok {
		return types.ErrElectionNotFound
	}

	if !election.VotingOpenAt(ctx.BlockHeight()) {
		return sdkerrors.Wrapf(types.ErrVotingClosed, "election %d at height %d", electionID, ctx.BlockHeight())
	}

	index := k.GetVotedIndex(ctx, voter)
	if index.Has(electionID) {
		return types.ErrAlreadyVoted
	}

	k.setVote(ctx, types.Vote{
		ElectionID: electionID,
		Voter:      voter,
		Commitment: commitment,
	})

	index.Voter = voter
	index.ElectionIDs = append(index.ElectionIDs, electionID)
	k.setVotedIndex(ctx, index)

	return nil
}

// RevealVote discloses the option and salt behind a stored commitment and bumps
// the tally for the revealed option. The reveal window is the half-open interval
// (created+duration, created+duration+revealPeriod]: reveals during voting are
// too early, reveals after the window are too late.
func (k Keeper) RevealVote(ctx sdk.Context, voter sdk.AccAddress, electionID uint64, option string, salt []byte) error {
	election, ok := k.GetElection(ctx, electionID)
	if !ok {
		return types.ErrElectionNotFound
	}

	vote, ok := k.GetVote(ctx, electionID, voter)
	if !ok {
		return types.ErrVoteNotFound
	}

	if vote.Revealed {
		return types.ErrAlreadyRevealed
	}

	if !bytes.Equal(exported.VoteCommitment(option, salt), vote.Commitment) {
		return types.ErrInvalidCommitment
	}

	if !election.HasOption(option) {
		return sdkerrors.Wrap(types.ErrInvalidOption, option)
	}

	if !election.RevealOpenAt(ctx.BlockHeight()) {
		return sdkerrors.Wrapf(types.ErrRevealNotOpen, "election %d at height %d", electionID, ctx.BlockHeight())
	}

	vote.Revealed = true
	vote.Choice = option
	vote.Salt = salt
	k.setVote(ctx, vote)

	k.incrementTally(ctx, electionID, option)

	k.Logger(ctx).Debug(fmt.Sprintf("vote revealed for election %d, option %s", electionID, option))
	return nil
}

// GetVote returns the vote for (election, voter), if one was submitted
func (k Keeper) GetVote(ctx sdk.Context, electionID uint64, voter sdk.AccAddress) (types.Vote, bool) {
	bz := ctx.KVStore(k.storeKey).Get(voteKey(electionID, voter))
	if bz == nil {
		return types.Vote{}, false
	}

	var vote types.Vote
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &vote)
	return vote, true
}

// GetVotedIndex returns the list of elections the voter has submitted a ballot for
func (k Keeper) GetVotedIndex(ctx sdk.Context, voter sdk.AccAddress) types.VotedIndex {
	bz := ctx.KVStore(k.storeKey).Get(votedKey(voter))
	if bz == nil {
		return types.VotedIndex{Voter: voter}
	}

	var index types.VotedIndex
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &index)
	return index
}

func (k Keeper) setVote(ctx sdk.Context, vote types.Vote) {
	ctx.KVStore(k.storeKey).Set(voteKey(vote.ElectionID, vote.Voter), k.cdc.MustMarshalBinaryLengthPrefixed(vote))
}

func (k Keeper) setVotedIndex(ctx sdk.Context, index types.VotedIndex) {
	ctx.KVStore(k.storeKey).Set(votedKey(index.Voter), k.cdc.MustMarshalBinaryLengthPrefixed(index))
}

func voteKey(electionID uint64, voter sdk.AccAddress) []byte {
	return []byte(fmt.Sprintf("%s%d_%s", ballotPrefix, electionID, voter.String()))
}

func votedKey(voter sdk.AccAddress) []byte {
	return []byte(votedPrefix + voter.String())
}
