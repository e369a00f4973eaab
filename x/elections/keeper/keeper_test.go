package keeper

import (
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	params "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	appParams "github.com/vocalis-network/vocalis-core/app/params"
	"github.com/vocalis-network/vocalis-core/testutils"
	"github.com/vocalis-network/vocalis-core/testutils/mock"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

var encCfg appParams.EncodingConfig

func init() {
	encCfg = testutils.MakeEncodingConfig()
}

type bankTransfer struct {
	From   sdk.AccAddress
	To     sdk.AccAddress
	Amount sdk.Coins
}

// bankMock records transfers and optionally fails them
type bankMock struct {
	SendCoinsFunc func(ctx sdk.Context, from sdk.AccAddress, to sdk.AccAddress, amt sdk.Coins) error
	Transfers     []bankTransfer
}

func (m *bankMock) SendCoins(ctx sdk.Context, from sdk.AccAddress, to sdk.AccAddress, amt sdk.Coins) error {
	m.Transfers = append(m.Transfers, bankTransfer{From: from, To: to, Amount: amt})
	if m.SendCoinsFunc != nil {
		return m.SendCoinsFunc(ctx, from, to, amt)
	}
	return nil
}

func setup(height int64) (sdk.Context, Keeper, *bankMock) {
	ctx := sdk.NewContext(mock.NewMultiStore(), tmproto.Header{Height: height}, false, log.TestingLogger())
	subspace := params.NewSubspace(encCfg.Marshaler, encCfg.Amino, sdk.NewKVStoreKey("paramsKey"), sdk.NewKVStoreKey("tparamsKey"), types.DefaultParamspace)

	bank := &bankMock{}
	k := NewKeeper(encCfg.Amino, sdk.NewKVStoreKey(types.StoreKey), subspace, bank)
	k.SetParams(ctx, types.DefaultParams())

	return ctx, k, bank
}

// initGovernance configures an authority and a generous election cap so tests
// can focus on the behaviour under test
func initGovernance(ctx sdk.Context, k Keeper, authority sdk.AccAddress) {
	if err := k.SetAuthority(ctx, authority); err != nil {
		panic(err)
	}
	k.setMaxElections(ctx, 100)
}

func newElection(name string) types.Election {
	return types.Election{
		Name:           name,
		MaxVoters:      10,
		Options:        []string{"yes", "no"},
		Duration:       10,
		Quorum:         50,
		Threshold:      1,
		Kind:           types.KindPublic,
		AnonymityLevel: 1,
		RevealPeriod:   20,
		Jurisdiction:   "global",
		Currency:       types.CurrencySTX,
		MinVotes:       1,
		MaxVotes:       1,
	}
}

func TestSetAuthority_SucceedsExactlyOnce(t *testing.T) {
	ctx, k, _ := setup(1)
	authority := testutils.RandAddress()

	assert.NoError(t, k.SetAuthority(ctx, authority))

	stored, ok := k.GetAuthority(ctx)
	require.True(t, ok)
	assert.Equal(t, authority, stored)

	err := k.SetAuthority(ctx, testutils.RandAddress())
	assert.True(t, errors.Is(err, types.ErrAlreadyConfigured))

	// the original authority survives the failed attempt
	stored, ok = k.GetAuthority(ctx)
	require.True(t, ok)
	assert.Equal(t, authority, stored)
}

func TestSetAuthority_RejectsMalformedAddress(t *testing.T) {
	ctx, k, _ := setup(1)

	err := k.SetAuthority(ctx, sdk.AccAddress{})
	assert.True(t, errors.Is(err, types.ErrInvalidPrincipal))

	_, ok := k.GetAuthority(ctx)
	assert.False(t, ok)
}

func TestSetMaxElections(t *testing.T) {
	ctx, k, _ := setup(1)
	authority := testutils.RandAddress()

	err := k.SetMaxElections(ctx, authority, 10)
	assert.True(t, errors.Is(err, types.ErrAuthorityNotVerified))

	require.NoError(t, k.SetAuthority(ctx, authority))

	err = k.SetMaxElections(ctx, testutils.RandAddress(), 10)
	assert.True(t, errors.Is(err, types.ErrNotAuthorized))

	err = k.SetMaxElections(ctx, authority, 0)
	assert.True(t, errors.Is(err, types.ErrInvalidParam))

	assert.NoError(t, k.SetMaxElections(ctx, authority, 10))
	assert.EqualValues(t, 10, k.GetMaxElections(ctx))
}

func TestSetCreationFee(t *testing.T) {
	ctx, k, _ := setup(1)
	authority := testutils.RandAddress()
	fee := sdk.NewInt64Coin(types.DefaultFeeDenom, 1000)

	err := k.SetCreationFee(ctx, authority, fee)
	assert.True(t, errors.Is(err, types.ErrAuthorityNotVerified))

	require.NoError(t, k.SetAuthority(ctx, authority))

	err = k.SetCreationFee(ctx, testutils.RandAddress(), fee)
	assert.True(t, errors.Is(err, types.ErrNotAuthorized))

	assert.NoError(t, k.SetCreationFee(ctx, authority, fee))
	assert.Equal(t, fee, k.GetCreationFee(ctx))
}

func TestGetCreationFee_DefaultsToZero(t *testing.T) {
	ctx, k, _ := setup(1)

	fee := k.GetCreationFee(ctx)
	assert.Equal(t, types.DefaultFeeDenom, fee.Denom)
	assert.True(t, fee.IsZero())
}
