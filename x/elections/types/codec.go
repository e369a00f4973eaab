package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers concrete types on codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(MsgSetAuthority{}, "elections/SetAuthority", nil)
	cdc.RegisterConcrete(MsgSetMaxElections{}, "elections/SetMaxElections", nil)
	cdc.RegisterConcrete(MsgSetCreationFee{}, "elections/SetCreationFee", nil)
	cdc.RegisterConcrete(MsgRegisterVoter{}, "elections/RegisterVoter", nil)
	cdc.RegisterConcrete(MsgDelegateVote{}, "elections/DelegateVote", nil)
	cdc.RegisterConcrete(MsgCreateElection{}, "elections/CreateElection", nil)
	cdc.RegisterConcrete(MsgUpdateElection{}, "elections/UpdateElection", nil)
	cdc.RegisterConcrete(MsgSubmitVote{}, "elections/SubmitVote", nil)
	cdc.RegisterConcrete(MsgRevealVote{}, "elections/RevealVote", nil)
}

// RegisterInterfaces registers types and interfaces with the given registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSetAuthority{},
		&MsgSetMaxElections{},
		&MsgSetCreationFee{},
		&MsgRegisterVoter{},
		&MsgDelegateVote{},
		&MsgCreateElection{},
		&MsgUpdateElection{},
		&MsgSubmitVote{},
		&MsgRevealVote{},
	)
}

var amino = codec.NewLegacyAmino()

// ModuleCdc defines the module codec
var ModuleCdc = amino

func init() {
	RegisterLegacyAminoCodec(amino)
	cryptocodec.RegisterCrypto(amino)
	amino.Seal()
}
