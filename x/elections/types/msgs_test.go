package types

import (
	"crypto/rand"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
)

var (
	_ sdk.Msg = &MsgSetAuthority{}
	_ sdk.Msg = &MsgSetMaxElections{}
	_ sdk.Msg = &MsgSetCreationFee{}
	_ sdk.Msg = &MsgRegisterVoter{}
	_ sdk.Msg = &MsgDelegateVote{}
	_ sdk.Msg = &MsgCreateElection{}
	_ sdk.Msg = &MsgUpdateElection{}
	_ sdk.Msg = &MsgSubmitVote{}
	_ sdk.Msg = &MsgRevealVote{}
)

func randAddress() sdk.AccAddress {
	return randBytes(sdk.AddrLen)
}

func randBytes(n int) []byte {
	bz := make([]byte, n)
	rand.Read(bz)
	return bz
}

func TestMsgRegisterVoter_ValidateBasic(t *testing.T) {
	assert.NoError(t, NewMsgRegisterVoter(randAddress(), randBytes(exported.HashLength)).ValidateBasic())

	assert.Error(t, NewMsgRegisterVoter(nil, randBytes(exported.HashLength)).ValidateBasic())
	assert.Error(t, NewMsgRegisterVoter(randAddress(), randBytes(exported.HashLength-1)).ValidateBasic())
	assert.Error(t, NewMsgRegisterVoter(randAddress(), nil).ValidateBasic())
}

func TestMsgSubmitVote_ValidateBasic(t *testing.T) {
	assert.NoError(t, NewMsgSubmitVote(randAddress(), 0, randBytes(exported.HashLength)).ValidateBasic())

	assert.Error(t, NewMsgSubmitVote(nil, 0, randBytes(exported.HashLength)).ValidateBasic())
	assert.Error(t, NewMsgSubmitVote(randAddress(), 0, randBytes(exported.HashLength+1)).ValidateBasic())
}

func TestMsgRevealVote_ValidateBasic(t *testing.T) {
	assert.NoError(t, NewMsgRevealVote(randAddress(), 0, "yes", randBytes(exported.HashLength)).ValidateBasic())

	assert.Error(t, NewMsgRevealVote(nil, 0, "yes", randBytes(exported.HashLength)).ValidateBasic())
	assert.Error(t, NewMsgRevealVote(randAddress(), 0, "yes", randBytes(16)).ValidateBasic())
}

func TestMsgSetCreationFee_ValidateBasic(t *testing.T) {
	assert.NoError(t, NewMsgSetCreationFee(randAddress(), sdk.NewInt64Coin(DefaultFeeDenom, 100)).ValidateBasic())
	assert.NoError(t, NewMsgSetCreationFee(randAddress(), sdk.NewInt64Coin(DefaultFeeDenom, 0)).ValidateBasic())

	assert.Error(t, NewMsgSetCreationFee(nil, sdk.NewInt64Coin(DefaultFeeDenom, 100)).ValidateBasic())
	assert.Error(t, NewMsgSetCreationFee(randAddress(), sdk.Coin{Denom: "", Amount: sdk.NewInt(1)}).ValidateBasic())
}

func TestMsgDelegateVote_ValidateBasic(t *testing.T) {
	assert.NoError(t, NewMsgDelegateVote(randAddress(), randAddress()).ValidateBasic())

	assert.Error(t, NewMsgDelegateVote(nil, randAddress()).ValidateBasic())
	assert.Error(t, NewMsgDelegateVote(randAddress(), nil).ValidateBasic())
}

func TestMsg_RouteAndSigners(t *testing.T) {
	sender := randAddress()
	msgs := []sdk.Msg{
		NewMsgSetAuthority(sender, randAddress()),
		NewMsgSetMaxElections(sender, 10),
		NewMsgSetCreationFee(sender, sdk.NewInt64Coin(DefaultFeeDenom, 1)),
		NewMsgRegisterVoter(sender, randBytes(exported.HashLength)),
		NewMsgDelegateVote(sender, randAddress()),
		NewMsgUpdateElection(sender, 0, "name", 10, []string{"yes"}),
		NewMsgSubmitVote(sender, 0, randBytes(exported.HashLength)),
		NewMsgRevealVote(sender, 0, "yes", randBytes(exported.HashLength)),
	}

	for _, msg := range msgs {
		assert.Equal(t, RouterKey, msg.Route())
		assert.Equal(t, []sdk.AccAddress{sender}, msg.GetSigners())
		assert.NotEmpty(t, msg.GetSignBytes())
	}
}

func TestMsgCreateElection_WireRoundtrip(t *testing.T) {
	msg := MsgCreateElection{
		Sender:         randAddress(),
		Name:           "city council",
		MaxVoters:      100,
		Options:        []string{"yes", "no", "abstain"},
		Duration:       600,
		Quorum:         50,
		Threshold:      2,
		Kind:           KindPublic,
		AnonymityLevel: 1,
		RevealPeriod:   300,
		Jurisdiction:   "municipal",
		Currency:       CurrencySTX,
		MinVotes:       1,
		MaxVotes:       1,
	}

	bz, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Len(t, bz, msg.Size())

	var actual MsgCreateElection
	assert.NoError(t, actual.Unmarshal(bz))
	assert.Equal(t, msg, actual)
}

func TestMsgSubmitVote_WireRoundtrip(t *testing.T) {
	msg := MsgSubmitVote{
		Sender:     randAddress(),
		ElectionID: 7,
		Commitment: randBytes(exported.HashLength),
	}

	bz, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Len(t, bz, msg.Size())

	var actual MsgSubmitVote
	assert.NoError(t, actual.Unmarshal(bz))
	assert.Equal(t, msg, actual)
}
