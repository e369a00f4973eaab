package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// NewMsgSetMaxElections - MsgSetMaxElections constructor. Caps how many
// elections may ever be created.
func NewMsgSetMaxElections(sender sdk.AccAddress, maxElections uint64) *MsgSetMaxElections {
	return &MsgSetMaxElections{
		Sender:       sender,
		MaxElections: maxElections,
	}
}

// Route returns the route for this message
func (m MsgSetMaxElections) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgSetMaxElections) Type() string {
	return "SetMaxElections"
}

// ValidateBasic executes a stateless message validation
func (m MsgSetMaxElections) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgSetMaxElections) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgSetMaxElections) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
