package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
)

func populatedGenesis() GenesisState {
	voter := randAddress()

	first := validElection()
	first.ID = 0
	first.Name = "first"
	second := validElection()
	second.ID = 1
	second.Name = "second"

	genState := NewGenesisState(DefaultParams(), randAddress(), DefaultMaxElections, sdk.NewInt64Coin(DefaultFeeDenom, 100))
	genState.Elections = []Election{first, second}
	genState.Voters = []Voter{{Address: voter, VoiceHash: randBytes(exported.HashLength)}}
	genState.VotedIndexes = []VotedIndex{{Voter: voter, ElectionIDs: []uint64{0}}}
	genState.Votes = []Vote{{
		ElectionID: 0,
		Voter:      voter,
		Commitment: randBytes(exported.HashLength),
	}}
	genState.Tallies = []TallyEntry{{ElectionID: 0, Option: "yes", Count: 1}}

	return genState
}

func TestGenesisValidate(t *testing.T) {
	assert.NoError(t, DefaultGenesis().Validate())
	assert.NoError(t, populatedGenesis().Validate())
}

// counters outlive option list rewrites, so a tally naming an option the
// election no longer declares is valid state
func TestGenesisValidate_TallyForRemovedOption(t *testing.T) {
	genState := populatedGenesis()
	genState.Tallies = append(genState.Tallies, TallyEntry{ElectionID: 0, Option: "withdrawn", Count: 2})

	assert.NoError(t, genState.Validate())
}

func TestGenesisValidate_Rejections(t *testing.T) {
	testCases := []struct {
		label  string
		mutate func(*GenesisState)
	}{
		{"non-dense election ids", func(g *GenesisState) { g.Elections[1].ID = 5 }},
		{"duplicate election names", func(g *GenesisState) { g.Elections[1].Name = g.Elections[0].Name }},
		{"invalid election", func(g *GenesisState) { g.Elections[0].Duration = 0 }},
		{"duplicate voters", func(g *GenesisState) { g.Voters = append(g.Voters, g.Voters[0]) }},
		{"short voice hash", func(g *GenesisState) { g.Voters[0].VoiceHash = randBytes(5) }},
		{"update record for unknown election", func(g *GenesisState) {
			g.UpdateRecords = []UpdateRecord{{ElectionID: 9}}
		}},
		{"voted index for unknown voter", func(g *GenesisState) { g.VotedIndexes[0].Voter = randAddress() }},
		{"vote by unknown voter", func(g *GenesisState) { g.Votes[0].Voter = randAddress() }},
		{"vote for unknown election", func(g *GenesisState) { g.Votes[0].ElectionID = 9 }},
		{"unrevealed vote carrying a choice", func(g *GenesisState) { g.Votes[0].Choice = "yes" }},
		{"tally with empty option", func(g *GenesisState) { g.Tallies[0].Option = "" }},
		{"tally for unknown election", func(g *GenesisState) { g.Tallies[0].ElectionID = 9 }},
		{"invalid creation fee", func(g *GenesisState) { g.CreationFee = sdk.Coin{Denom: "", Amount: sdk.OneInt()} }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.label, func(t *testing.T) {
			genState := populatedGenesis()
			testCase.mutate(&genState)
			assert.Error(t, genState.Validate())
		})
	}
}
