package keeper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalis-network/vocalis-core/testutils"
	"github.com/vocalis-network/vocalis-core/x/elections/exported"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

func TestRegisterVoter_RequiresAuthority(t *testing.T) {
	ctx, k, _ := setup(1)

	err := k.RegisterVoter(ctx, testutils.RandAddress(), testutils.RandBytes(exported.HashLength))
	assert.True(t, errors.Is(err, types.ErrAuthorityNotVerified))
}

func TestRegisterVoter_IsMonotonic(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	voter := testutils.RandAddress()
	voiceHash := testutils.RandBytes(exported.HashLength)

	assert.False(t, k.IsRegistered(ctx, voter))
	require.NoError(t, k.RegisterVoter(ctx, voter, voiceHash))
	assert.True(t, k.IsRegistered(ctx, voter))

	record, ok := k.GetVoter(ctx, voter)
	require.True(t, ok)
	assert.Equal(t, voiceHash, record.VoiceHash)
	assert.Empty(t, record.Delegate)

	err := k.RegisterVoter(ctx, voter, testutils.RandBytes(exported.HashLength))
	assert.True(t, errors.Is(err, types.ErrAlreadyRegistered))

	// the original voice hash survives the failed attempt
	record, _ = k.GetVoter(ctx, voter)
	assert.Equal(t, voiceHash, record.VoiceHash)
}

func TestDelegateVote(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	voter := testutils.RandAddress()
	delegate := testutils.RandAddress()

	err := k.DelegateVote(ctx, voter, delegate)
	assert.True(t, errors.Is(err, types.ErrNotRegistered))

	require.NoError(t, k.RegisterVoter(ctx, voter, testutils.RandBytes(exported.HashLength)))

	err = k.DelegateVote(ctx, voter, delegate)
	assert.True(t, errors.Is(err, types.ErrInvalidDelegate))

	require.NoError(t, k.RegisterVoter(ctx, delegate, testutils.RandBytes(exported.HashLength)))
	require.NoError(t, k.DelegateVote(ctx, voter, delegate))

	record, ok := k.GetVoter(ctx, voter)
	require.True(t, ok)
	assert.Equal(t, delegate, record.Delegate)
}

func TestDelegateVote_OverwritesAndAllowsSelf(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	voter := testutils.RandAddress()
	other := testutils.RandAddress()
	require.NoError(t, k.RegisterVoter(ctx, voter, testutils.RandBytes(exported.HashLength)))
	require.NoError(t, k.RegisterVoter(ctx, other, testutils.RandBytes(exported.HashLength)))

	require.NoError(t, k.DelegateVote(ctx, voter, other))

	// the delegate reference is advisory, so pointing it back at the voter is fine
	require.NoError(t, k.DelegateVote(ctx, voter, voter))

	record, _ := k.GetVoter(ctx, voter)
	assert.Equal(t, voter, record.Delegate)
}
