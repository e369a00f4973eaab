package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// CreateElection registers a new election and returns its assigned id.
// Checks run in a fixed order: capacity, field bounds in declaration order,
// name uniqueness, authority configuration. The creation fee is transferred to
// the authority only after every check has passed.
func (k Keeper) CreateElection(ctx sdk.Context, creator sdk.AccAddress, election types.Election) (uint64, error) {
	nextID := k.GetElectionCount(ctx)
	if nextID >= k.GetMaxElections(ctx) {
		return 0, types.ErrMaxElectionsExceeded
	}

	if err := election.Validate(); err != nil {
		return 0, err
	}

	if _, ok := k.getElectionID(ctx, election.Name); ok {
		return 0, sdkerrors.Wrap(types.ErrElectionAlreadyExists, election.Name)
	}

	authority, ok := k.GetAuthority(ctx)
	if !ok {
		return 0, types.ErrAuthorityNotVerified
	}

	if fee := k.GetCreationFee(ctx); fee.IsPositive() {
		if err := k.bank.SendCoins(ctx, creator, authority, sdk.NewCoins(fee)); err != nil {
			return 0, sdkerrors.Wrap(err, "creation fee transfer failed")
		}
	}

	election.ID = nextID
	election.CreatedAt = ctx.BlockHeight()
	election.UpdatedAt = 0
	election.Creator = creator
	election.Open = true

	k.setElection(ctx, election)
	k.setElectionID(ctx, election.Name, election.ID)
	k.setElectionCount(ctx, nextID+1)

	k.Logger(ctx).Info(fmt.Sprintf("election %d (%s) created by %s", election.ID, election.Name, creator.String()))
	return election.ID, nil
}

// UpdateElection rewrites the mutable fields of an election (name, capacity,
// options) and records an update snapshot. Only the original creator may update.
// Renaming to the election's current name is a permitted no-op.
func (k Keeper) UpdateElection(ctx sdk.Context, actor sdk.AccAddress, electionID uint64, newName string, newMaxVoters int64, newOptions []string) error {
	election, ok := k.GetElection(ctx, electionID)
	if !ok {
		return types.ErrElectionNotFound
	}

	if !actor.Equals(election.Creator) {
		return sdkerrors.Wrap(types.ErrNotAuthorized, "only the creator may update an election")
	}

	if newName == "" && newMaxVoters == 0 && len(newOptions) == 0 {
		return sdkerrors.Wrap(types.ErrInvalidUpdateParam, "update must change at least one field")
	}

	if err := types.ValidateName(newName); err != nil {
		return err
	}
	if err := types.ValidateMaxVoters(newMaxVoters); err != nil {
		return err
	}
	if err := types.ValidateOptions(newOptions); err != nil {
		return err
	}

	if existingID, ok := k.getElectionID(ctx, newName); ok && existingID != electionID {
		return sdkerrors.Wrap(types.ErrElectionAlreadyExists, newName)
	}

	store := ctx.KVStore(k.storeKey)
	if newName != election.Name {
		store.Delete(nameKey(election.Name))
	}

	election.Name = newName
	election.MaxVoters = newMaxVoters
	election.Options = newOptions
	election.UpdatedAt = ctx.BlockHeight()

	k.setElection(ctx, election)
	k.setElectionID(ctx, newName, electionID)

	record := types.UpdateRecord{
		ElectionID:   electionID,
		NewName:      newName,
		NewMaxVoters: newMaxVoters,
		NewOptions:   newOptions,
		UpdatedAt:    ctx.BlockHeight(),
		UpdatedBy:    actor,
	}
	store.Set(updateKey(electionID), k.cdc.MustMarshalBinaryLengthPrefixed(record))

	return nil
}

// GetElection returns the election with the given id, if it exists
func (k Keeper) GetElection(ctx sdk.Context, electionID uint64) (types.Election, bool) {
	bz := ctx.KVStore(k.storeKey).Get(electionKey(electionID))
	if bz == nil {
		return types.Election{}, false
	}

	var election types.Election
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &election)
	return election, true
}

// GetElectionByName returns the election registered under the given name, if any
func (k Keeper) GetElectionByName(ctx sdk.Context, name string) (types.Election, bool) {
	id, ok := k.getElectionID(ctx, name)
	if !ok {
		return types.Election{}, false
	}
	return k.GetElection(ctx, id)
}

// ExistsName reports whether some election is registered under the given name
func (k Keeper) ExistsName(ctx sdk.Context, name string) bool {
	return ctx.KVStore(k.storeKey).Has(nameKey(name))
}

// GetElectionCount returns the number of elections created so far, which is
// also the next id to be assigned
func (k Keeper) GetElectionCount(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get([]byte(countKey))
	if bz == nil {
		return 0
	}

	var count uint64
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &count)
	return count
}

// GetUpdateRecord returns the last update snapshot for an election, if any
func (k Keeper) GetUpdateRecord(ctx sdk.Context, electionID uint64) (types.UpdateRecord, bool) {
	bz := ctx.KVStore(k.storeKey).Get(updateKey(electionID))
	if bz == nil {
		return types.UpdateRecord{}, false
	}

	var record types.UpdateRecord
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &record)
	return record, true
}

func (k Keeper) setElection(ctx sdk.Context, election types.Election) {
	ctx.KVStore(k.storeKey).Set(electionKey(election.ID), k.cdc.MustMarshalBinaryLengthPrefixed(election))
}

func (k Keeper) getElectionID(ctx sdk.Context, name string) (uint64, bool) {
	bz := ctx.KVStore(k.storeKey).Get(nameKey(name))
	if bz == nil {
		return 0, false
	}

	var id uint64
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &id)
	return id, true
}

func (k Keeper) setElectionID(ctx sdk.Context, name string, electionID uint64) {
	ctx.KVStore(k.storeKey).Set(nameKey(name), k.cdc.MustMarshalBinaryLengthPrefixed(electionID))
}

func (k Keeper) setElectionCount(ctx sdk.Context, count uint64) {
	ctx.KVStore(k.storeKey).Set([]byte(countKey), k.cdc.MustMarshalBinaryLengthPrefixed(count))
}

func electionKey(electionID uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", electionPrefix, electionID))
}

func nameKey(name string) []byte {
	return []byte(namePrefix + name)
}

func updateKey(electionID uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", updatePrefix, electionID))
}
