package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// NewMsgDelegateVote - MsgDelegateVote constructor. The delegate reference is
// purely descriptive and is never resolved transitively.
func NewMsgDelegateVote(sender sdk.AccAddress, delegate sdk.AccAddress) *MsgDelegateVote {
	return &MsgDelegateVote{
		Sender:   sender,
		Delegate: delegate,
	}
}

// Route returns the route for this message
func (m MsgDelegateVote) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgDelegateVote) Type() string {
	return "DelegateVote"
}

// ValidateBasic executes a stateless message validation
func (m MsgDelegateVote) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	if err := sdk.VerifyAddressFormat(m.Delegate); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "delegate").Error())
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgDelegateVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgDelegateVote) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
