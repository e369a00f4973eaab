package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper adopts the methods of the bank keeper that are actually used by
// this module. It is the currency transfer primitive supplied by the ledger.
type BankKeeper interface {
	SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
}
