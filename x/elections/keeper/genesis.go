package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// InitGenesis initializes the elections module's state from a given genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	k.SetParams(ctx, genState.Params)

	store := ctx.KVStore(k.storeKey)

	if len(genState.Authority) > 0 {
		store.Set([]byte(authorityKey), k.cdc.MustMarshalBinaryLengthPrefixed(genState.Authority))
	}
	k.setMaxElections(ctx, genState.MaxElections)
	k.setCreationFee(ctx, genState.CreationFee)

	for _, election := range genState.Elections {
		k.setElection(ctx, election)
		k.setElectionID(ctx, election.Name, election.ID)
	}
	k.setElectionCount(ctx, uint64(len(genState.Elections)))

	for _, record := range genState.UpdateRecords {
		store.Set(updateKey(record.ElectionID), k.cdc.MustMarshalBinaryLengthPrefixed(record))
	}

	for _, voter := range genState.Voters {
		k.setVoter(ctx, voter)
	}

	for _, index := range genState.VotedIndexes {
		k.setVotedIndex(ctx, index)
	}

	for _, vote := range genState.Votes {
		k.setVote(ctx, vote)
	}

	for _, tally := range genState.Tallies {
		k.setTally(ctx, tally.ElectionID, tally.Option, tally.Count)
	}
}

// ExportGenesis returns the elections module's full state for a genesis file
func (k Keeper) ExportGenesis(ctx sdk.Context) types.GenesisState {
	authority, _ := k.GetAuthority(ctx)

	genState := types.GenesisState{
		Params:       k.GetParams(ctx),
		Authority:    authority,
		MaxElections: k.GetMaxElections(ctx),
		CreationFee:  k.GetCreationFee(ctx),
	}

	count := k.GetElectionCount(ctx)
	for id := uint64(0); id < count; id++ {
		election, ok := k.GetElection(ctx, id)
		if !ok {
			continue
		}
		genState.Elections = append(genState.Elections, election)

		if record, ok := k.GetUpdateRecord(ctx, id); ok {
			genState.UpdateRecords = append(genState.UpdateRecords, record)
		}

		// walk the stored counters rather than the current option list so
		// tallies for options removed by a later update are not lost
		prefix := electionTallyPrefix(id)
		iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), prefix)
		for ; iter.Valid(); iter.Next() {
			var count uint64
			k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &count)
			if count == 0 {
				continue
			}

			option := string(iter.Key()[len(prefix):])
			genState.Tallies = append(genState.Tallies, types.TallyEntry{ElectionID: id, Option: option, Count: count})
		}
		iter.Close()
	}

	store := ctx.KVStore(k.storeKey)

	iter := sdk.KVStorePrefixIterator(store, []byte(voterPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var voter types.Voter
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &voter)
		genState.Voters = append(genState.Voters, voter)
	}

	iter = sdk.KVStorePrefixIterator(store, []byte(votedPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var index types.VotedIndex
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &index)
		genState.VotedIndexes = append(genState.VotedIndexes, index)
	}

	iter = sdk.KVStorePrefixIterator(store, []byte(ballotPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var vote types.Vote
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &vote)
		genState.Votes = append(genState.Votes, vote)
	}

	return genState
}
