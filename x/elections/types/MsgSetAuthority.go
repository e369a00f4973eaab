package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// NewMsgSetAuthority - MsgSetAuthority constructor. The authority receives
// creation fees and gates registration; setting it can succeed only once for
// the life of the chain.
func NewMsgSetAuthority(sender sdk.AccAddress, authority sdk.AccAddress) *MsgSetAuthority {
	return &MsgSetAuthority{
		Sender:    sender,
		Authority: authority,
	}
}

// Route returns the route for this message
func (m MsgSetAuthority) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgSetAuthority) Type() string {
	return "SetAuthority"
}

// ValidateBasic executes a stateless message validation
func (m MsgSetAuthority) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgSetAuthority) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgSetAuthority) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
