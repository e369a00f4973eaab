package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// RegisterVoter creates a voter record for the given identity. Registration is
// monotonic: it cannot be repeated and never expires.
func (k Keeper) RegisterVoter(ctx sdk.Context, voter sdk.AccAddress, voiceHash []byte) error {
	if _, ok := k.GetAuthority(ctx); !ok {
		return types.ErrAuthorityNotVerified
	}

	if k.IsRegistered(ctx, voter) {
		return types.ErrAlreadyRegistered
	}

	k.setVoter(ctx, types.Voter{
		Address:   voter,
		VoiceHash: voiceHash,
	})
	return nil
}

// DelegateVote overwrites the voter's delegate reference. The delegate must be
// registered; beyond that the reference is advisory metadata, so self-delegation
// and cycles are not rejected.
func (k Keeper) DelegateVote(ctx sdk.Context, voter sdk.AccAddress, delegate sdk.AccAddress) error {
	record, ok := k.GetVoter(ctx, voter)
	if !ok {
		return types.ErrNotRegistered
	}

	if !k.IsRegistered(ctx, delegate) {
		return types.ErrInvalidDelegate
	}

	record.Delegate = delegate
	k.setVoter(ctx, record)
	return nil
}

// IsRegistered reports whether the identity has a voter record
func (k Keeper) IsRegistered(ctx sdk.Context, voter sdk.AccAddress) bool {
	return ctx.KVStore(k.storeKey).Has(voterKey(voter))
}

// GetVoter returns the voter record for the given identity, if it exists
func (k Keeper) GetVoter(ctx sdk.Context, voter sdk.AccAddress) (types.Voter, bool) {
	bz := ctx.KVStore(k.storeKey).Get(voterKey(voter))
	if bz == nil {
		return types.Voter{}, false
	}

	var record types.Voter
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &record)
	return record, true
}

func (k Keeper) setVoter(ctx sdk.Context, record types.Voter) {
	ctx.KVStore(k.storeKey).Set(voterKey(record.Address), k.cdc.MustMarshalBinaryLengthPrefixed(record))
}

func voterKey(voter sdk.AccAddress) []byte {
	return []byte(voterPrefix + voter.String())
}
