package elections

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vocalis-network/vocalis-core/x/elections/keeper"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// InitGenesis initializes the elections module state from genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	k.InitGenesis(ctx, genState)
}

// ExportGenesis writes the current store values to a genesis file,
// which can be imported again with InitGenesis
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	return k.ExportGenesis(ctx)
}
