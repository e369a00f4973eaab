package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Most of MsgCreateElection's fields are validated statefully by the keeper so
// the documented check order (capacity first, then each field bound in
// declaration order) is preserved.

// Route returns the route for this message
func (m MsgCreateElection) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgCreateElection) Type() string {
	return "CreateElection"
}

// ValidateBasic executes a stateless message validation
func (m MsgCreateElection) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgCreateElection) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgCreateElection) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
