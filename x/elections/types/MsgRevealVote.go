package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
)

// NewMsgRevealVote - MsgRevealVote constructor. Discloses the option and salt
// behind a previously submitted commitment, once the voting window has closed.
func NewMsgRevealVote(sender sdk.AccAddress, electionID uint64, option string, salt []byte) *MsgRevealVote {
	return &MsgRevealVote{
		Sender:     sender,
		ElectionID: electionID,
		Option:     option,
		Salt:       salt,
	}
}

// Route returns the route for this message
func (m MsgRevealVote) Route() string {
	return RouterKey
}

// Type returns the type of the message
func (m MsgRevealVote) Type() string {
	return "RevealVote"
}

// ValidateBasic executes a stateless message validation
func (m MsgRevealVote) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(m.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, sdkerrors.Wrap(err, "sender").Error())
	}
	if len(m.Salt) != exported.HashLength {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "salt must be %d bytes", exported.HashLength)
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (m MsgRevealVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the set of signers for this message
func (m MsgRevealVote) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{m.Sender}
}
