package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
)

// NewMsgSubmitVote - MsgSubmitVote constructor. The commitment binds the vote
// without revealing the chosen option.
func NewMsgSubmitVote(sender sdk.AccAddress, electionID uint64, commitment []byte) *MsgSubmitVote {
	return &MsgSubmitVote{
		Sender:     sender,
		ElectionID: electionID,
		Commitment: commitment,
	}
}

// Route returns the route for this message
func (m MsgSubmitVote) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgSubmitVote) Type() string {
	return "SubmitVote"
}

// ValidateBasic executes a stateless message validation
func (m MsgSubmitVote) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	if len(m.Commitment) != exported.HashLength {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "commitment must be %d bytes", exported.HashLength)
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgSubmitVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgSubmitVote) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
