package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// NewMsgSetCreationFee - MsgSetCreationFee constructor. The fee is transferred
// to the authority on every election creation.
func NewMsgSetCreationFee(sender sdk.AccAddress, fee sdk.Coin) *MsgSetCreationFee {
	return &MsgSetCreationFee{
		Sender: sender,
		Fee:    fee,
	}
}

// Route returns the route for this message
func (m MsgSetCreationFee) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgSetCreationFee) Type() string {
	return "SetCreationFee"
}

// ValidateBasic executes a stateless message validation
func (m MsgSetCreationFee) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	if !m.Fee.IsValid() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, m.Fee.String())
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgSetCreationFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgSetCreationFee) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
