package elections

import (
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	params "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	"github.com/vocalis-network/vocalis-core/testutils"
	"github.com/vocalis-network/vocalis-core/testutils/mock"
	"github.com/vocalis-network/vocalis-core/x/elections/exported"
	"github.com/vocalis-network/vocalis-core/x/elections/keeper"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

type recordingBank struct {
	Sent sdk.Coins
}

func (b *recordingBank) SendCoins(_ sdk.Context, _ sdk.AccAddress, _ sdk.AccAddress, amt sdk.Coins) error {
	b.Sent = b.Sent.Add(amt...)
	return nil
}

func setup(height int64) (sdk.Context, sdk.Handler, keeper.Keeper, *recordingBank) {
	encCfg := testutils.MakeEncodingConfig()
	ctx := sdk.NewContext(mock.NewMultiStore(), tmproto.Header{Height: height}, false, log.TestingLogger())
	subspace := params.NewSubspace(encCfg.Marshaler, encCfg.Amino, sdk.NewKVStoreKey("paramsKey"), sdk.NewKVStoreKey("tparamsKey"), types.DefaultParamspace)

	bank := &recordingBank{}
	k := keeper.NewKeeper(encCfg.Amino, sdk.NewKVStoreKey(types.StoreKey), subspace, bank)
	k.SetParams(ctx, types.DefaultParams())

	return ctx, NewHandler(k), k, bank
}

func createMsg(sender sdk.AccAddress, name string) *types.MsgCreateElection {
	return &types.MsgCreateElection{
		Sender:         sender,
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

func TestHandler_FullElectionFlow(t *testing.T) {
	ctx, handler, k, bank := setup(1)

	authority := testutils.RandAddress()
	creator := testutils.RandAddress()
	voter := testutils.RandAddress()

	_, err := handler(ctx, types.NewMsgSetAuthority(authority, authority))
	require.NoError(t, err)
	_, err = handler(ctx, types.NewMsgSetMaxElections(authority, 10))
	require.NoError(t, err)
	fee := sdk.NewInt64Coin(types.DefaultFeeDenom, 1000)
	_, err = handler(ctx, types.NewMsgSetCreationFee(authority, fee))
	require.NoError(t, err)

	res, err := handler(ctx, createMsg(creator, "Vote2025"))
	require.NoError(t, err)
	assert.Equal(t, []byte("0"), res.Data)
	assert.Equal(t, sdk.NewCoins(fee), bank.Sent)

	// a second election under the same name is rejected
	_, err = handler(ctx, createMsg(creator, "Vote2025"))
	assert.True(t, errors.Is(err, types.ErrElectionAlreadyExists))

	_, err = handler(ctx, types.NewMsgRegisterVoter(voter, testutils.RandBytes(exported.HashLength)))
	require.NoError(t, err)

	salt := testutils.RandBytes(exported.HashLength)
	_, err = handler(ctx, types.NewMsgSubmitVote(voter, 0, exported.VoteCommitment("yes", salt)))
	require.NoError(t, err)

	// reveals are rejected while voting is still open
	_, err = handler(ctx, types.NewMsgRevealVote(voter, 0, "yes", salt))
	assert.True(t, errors.Is(err, types.ErrRevealNotOpen))

	_, err = handler(ctx.WithBlockHeight(12), types.NewMsgRevealVote(voter, 0, "yes", salt))
	require.NoError(t, err)

	winner, found, err := k.ComputeWinner(ctx, 0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "yes", winner)
}

func TestHandler_UpdateElection(t *testing.T) {
	ctx, handler, k, _ := setup(1)

	authority := testutils.RandAddress()
	creator := testutils.RandAddress()
	_, err := handler(ctx, types.NewMsgSetAuthority(authority, authority))
	require.NoError(t, err)
	_, err = handler(ctx, types.NewMsgSetMaxElections(authority, 10))
	require.NoError(t, err)
	_, err = handler(ctx, createMsg(creator, "original"))
	require.NoError(t, err)

	_, err = handler(ctx, types.NewMsgUpdateElection(creator, 0, "renamed", 25, []string{"a", "b"}))
	require.NoError(t, err)

	election, ok := k.GetElectionByName(ctx, "renamed")
	require.True(t, ok)
	assert.EqualValues(t, 25, election.MaxVoters)
}

func TestHandler_EmitsActionEvent(t *testing.T) {
	ctx, handler, _, _ := setup(1)

	authority := testutils.RandAddress()
	res, err := handler(ctx, types.NewMsgSetAuthority(authority, authority))
	require.NoError(t, err)

	require.Len(t, res.Events, 1)
	assert.Equal(t, sdk.EventTypeMessage, res.Events[0].Type)

	attributes := make(map[string]string)
	for _, attr := range res.Events[0].Attributes {
		attributes[string(attr.Key)] = string(attr.Value)
	}
	assert.Equal(t, types.ModuleName, attributes[sdk.AttributeKeyModule])
	assert.Equal(t, types.AttributeSetAuthority, attributes[sdk.AttributeKeyAction])
	assert.Equal(t, authority.String(), attributes[types.AttributeAuthority])
}

func TestHandler_UnknownMessage(t *testing.T) {
	ctx, handler, _, _ := setup(1)

	_, err := handler(ctx, nil)
	assert.Error(t, err)
}
