package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
)

// NewMsgRegisterVoter - MsgRegisterVoter constructor. The voice hash is the
// opaque output of the off-chain biometric conversion and is never interpreted
// here.
func NewMsgRegisterVoter(sender sdk.AccAddress, voiceHash []byte) *MsgRegisterVoter {
	return &MsgRegisterVoter{
		Sender:    sender,
		VoiceHash: voiceHash,
	}
}

// Route returns the route for this message
func (m MsgRegisterVoter) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgRegisterVoter) Type() string {
	return "RegisterVoter"
}

// ValidateBasic executes a stateless message validation
func (m MsgRegisterVoter) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	if len(m.VoiceHash) != exported.HashLength {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "voice hash must be %d bytes", exported.HashLength)
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgRegisterVoter) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgRegisterVoter) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
