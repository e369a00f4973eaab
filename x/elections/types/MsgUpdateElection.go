package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// NewMsgUpdateElection - MsgUpdateElection constructor. Rewrites the mutable
// fields of an election: name, voter capacity and option list. Timing, quorum,
// threshold and kind stay fixed for the life of the election.
func NewMsgUpdateElection(sender sdk.AccAddress, id uint64, name string, maxVoters int64, options []string) *MsgUpdateElection {
	return &MsgUpdateElection{
		Sender:       sender,
		ElectionID:   id,
		NewName:      name,
		NewMaxVoters: maxVoters,
		NewOptions:   options,
	}
}

// Route returns the route for this message
func (m MsgUpdateElection) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgUpdateElection) Type() string {
	return "UpdateElection"
}

// ValidateBasic executes a stateless message validation
func (m MsgUpdateElection) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgUpdateElection) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgUpdateElection) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
