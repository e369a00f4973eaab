package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// GetTally returns the number of successful reveals for (election, option).
// Options that have never been revealed tally zero.
func (k Keeper) GetTally(ctx sdk.Context, electionID uint64, option string) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(tallyKey(electionID, option))
	if bz == nil {
		return 0
	}

	var count uint64
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &count)
	return count
}

// RevealedCount returns the total number of revealed votes for an election.
// Counters survive option list rewrites, so the walk covers every option ever
// revealed, not just the ones currently declared.
func (k Keeper) RevealedCount(ctx sdk.Context, electionID uint64) uint64 {
	var total uint64

	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), electionTallyPrefix(electionID))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var count uint64
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &count)
		total += count
	}
	return total
}

// CheckQuorum reports whether the revealed participation reaches the election's
// quorum: totalRevealed >= maxVoters * quorum / 100, integer-truncating.
// Nothing invokes this check automatically; callers that want quorum to gate a
// downstream action must call it explicitly.
func (k Keeper) CheckQuorum(ctx sdk.Context, electionID uint64, totalRevealed uint64) error {
	election, ok := k.GetElection(ctx, electionID)
	if !ok {
		return types.ErrElectionNotFound
	}

	required := uint64(election.MaxVoters) * uint64(election.Quorum) / 100
	if totalRevealed < required {
		return types.ErrQuorumNotMet
	}
	return nil
}

// ComputeWinner scans the election's options in declaration order and returns
// the first one whose tally reaches the threshold. Declaration order takes
// precedence over vote count: an earlier qualifying option wins even if a later
// one tallied more votes.
func (k Keeper) ComputeWinner(ctx sdk.Context, electionID uint64) (string, bool, error) {
	election, ok := k.GetElection(ctx, electionID)
	if !ok {
		return "", false, types.ErrElectionNotFound
	}

	for _, option := range election.Options {
		if k.GetTally(ctx, election.ID, option) >= uint64(election.Threshold) {
			return option, true, nil
		}
	}
	return "", false, nil
}

func (k Keeper) incrementTally(ctx sdk.Context, electionID uint64, option string) {
	k.setTally(ctx, electionID, option, k.GetTally(ctx, electionID, option)+1)
}

func (k Keeper) setTally(ctx sdk.Context, electionID uint64, option string, count uint64) {
	ctx.KVStore(k.storeKey).Set(tallyKey(electionID, option), k.cdc.MustMarshalBinaryLengthPrefixed(count))
}

func tallyKey(electionID uint64, option string) []byte {
	return []byte(fmt.Sprintf("%s%d_%s", tallyPrefix, electionID, option))
}

// electionTallyPrefix bounds all tally keys of a single election. The trailing
// underscore keeps election 1 from matching election 12.
func electionTallyPrefix(electionID uint64) []byte {
	return []byte(fmt.Sprintf("%s%d_", tallyPrefix, electionID))
}
