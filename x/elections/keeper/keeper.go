/*
Package keeper implements the election state machine: governance configuration,
the voter directory, the election registry, the commit-reveal ballot protocol
and the tally. Every public operation validates fully before writing anything,
so a failed call leaves the store untouched; the surrounding ledger provides
the per-transaction commit/rollback on top of that.
*/
package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

const (
	authorityKey    = "authority"
	maxElectionsKey = "maxElections"
	creationFeeKey  = "creationFee"
	countKey        = "count"

	electionPrefix = "election_"
	namePrefix     = "name_"
	updatePrefix   = "update_"
	voterPrefix    = "voter_"
	votedPrefix    = "voted_"
	ballotPrefix   = "ballot_"
	tallyPrefix    = "tally_"
)

// Keeper represents the elections keeper
type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.LegacyAmino
	params   paramtypes.Subspace
	bank     types.BankKeeper
}

// NewKeeper - keeper constructor
func NewKeeper(cdc *codec.LegacyAmino, key sdk.StoreKey, paramSpace paramtypes.Subspace, bank types.BankKeeper) Keeper {
	return Keeper{
		storeKey: key,
		cdc:      cdc,
		params:   paramSpace.WithKeyTable(types.KeyTable()),
		bank:     bank,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// SetParams sets the module's parameters
func (k Keeper) SetParams(ctx sdk.Context, set types.Params) {
	k.params.SetParamSet(ctx, &set)
}

// GetParams gets the module's parameters
func (k Keeper) GetParams(ctx sdk.Context) (params types.Params) {
	k.params.GetParamSet(ctx, &params)
	return
}

// SetAuthority configures the election authority. It succeeds exactly once for
// the life of the store.
func (k Keeper) SetAuthority(ctx sdk.Context, authority sdk.AccAddress) error {
	if _, ok := k.GetAuthority(ctx); ok {
		return types.ErrAlreadyConfigured
	}

	if err := sdk.VerifyAddressFormat(authority); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidPrincipal, err.Error())
	}

	ctx.KVStore(k.storeKey).Set([]byte(authorityKey), k.cdc.MustMarshalBinaryLengthPrefixed(authority))
	return nil
}

// GetAuthority returns the configured election authority, if any
func (k Keeper) GetAuthority(ctx sdk.Context) (sdk.AccAddress, bool) {
	bz := ctx.KVStore(k.storeKey).Get([]byte(authorityKey))
	if bz == nil {
		return nil, false
	}

	var authority sdk.AccAddress
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &authority)
	return authority, true
}

// SetMaxElections caps the number of elections that can ever be created.
// Only the configured authority may change the cap.
func (k Keeper) SetMaxElections(ctx sdk.Context, actor sdk.AccAddress, maxElections uint64) error {
	authority, ok := k.GetAuthority(ctx)
	if !ok {
		return types.ErrAuthorityNotVerified
	}
	if !actor.Equals(authority) {
		return sdkerrors.Wrap(types.ErrNotAuthorized, "only the authority may set the election cap")
	}
	if maxElections == 0 {
		return sdkerrors.Wrap(types.ErrInvalidParam, "max election count must be greater than 0")
	}

	ctx.KVStore(k.storeKey).Set([]byte(maxElectionsKey), k.cdc.MustMarshalBinaryLengthPrefixed(maxElections))
	return nil
}

// GetMaxElections returns the configured election cap
func (k Keeper) GetMaxElections(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get([]byte(maxElectionsKey))
	if bz == nil {
		return 0
	}

	var maxElections uint64
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &maxElections)
	return maxElections
}

func (k Keeper) setMaxElections(ctx sdk.Context, maxElections uint64) {
	ctx.KVStore(k.storeKey).Set([]byte(maxElectionsKey), k.cdc.MustMarshalBinaryLengthPrefixed(maxElections))
}

// SetCreationFee sets the fee transferred from the creator to the authority on
// every election creation. Only the configured authority may change it.
func (k Keeper) SetCreationFee(ctx sdk.Context, actor sdk.AccAddress, fee sdk.Coin) error {
	authority, ok := k.GetAuthority(ctx)
	if !ok {
		return types.ErrAuthorityNotVerified
	}
	if !actor.Equals(authority) {
		return sdkerrors.Wrap(types.ErrNotAuthorized, "only the authority may set the creation fee")
	}
	if !fee.IsValid() {
		return sdkerrors.Wrap(types.ErrInvalidParam, fee.String())
	}

	ctx.KVStore(k.storeKey).Set([]byte(creationFeeKey), k.cdc.MustMarshalBinaryLengthPrefixed(fee))
	return nil
}

// GetCreationFee returns the configured election creation fee
func (k Keeper) GetCreationFee(ctx sdk.Context) sdk.Coin {
	bz := ctx.KVStore(k.storeKey).Get([]byte(creationFeeKey))
	if bz == nil {
		return sdk.NewInt64Coin(k.GetParams(ctx).FeeDenom, 0)
	}

	var fee sdk.Coin
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &fee)
	return fee
}

func (k Keeper) setCreationFee(ctx sdk.Context, fee sdk.Coin) {
	ctx.KVStore(k.storeKey).Set([]byte(creationFeeKey), k.cdc.MustMarshalBinaryLengthPrefixed(fee))
}
