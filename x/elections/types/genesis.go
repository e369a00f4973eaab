package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// DefaultMaxElections is the election cap a fresh chain starts with.
// The authority can raise or lower it at any time.
const DefaultMaxElections = 100

// TallyEntry is a single (election, option) counter for genesis import/export
type TallyEntry struct {
	ElectionID uint64
	Option     string
	Count      uint64
}

// GenesisState represents the full elections module state
type GenesisState struct {
	Params        Params
	Authority     sdk.AccAddress
	MaxElections  uint64
	CreationFee   sdk.Coin
	Elections     []Election
	UpdateRecords []UpdateRecord
	Voters        []Voter
	VotedIndexes  []VotedIndex
	Votes         []Vote
	Tallies       []TallyEntry
}

// NewGenesisState is the constructor for GenesisState
func NewGenesisState(params Params, authority sdk.AccAddress, maxElections uint64, creationFee sdk.Coin) GenesisState {
	return GenesisState{
		Params:       params,
		Authority:    authority,
		MaxElections: maxElections,
		CreationFee:  creationFee,
	}
}

// DefaultGenesis returns a genesis state with default parameters, no authority
// and a zero creation fee
func DefaultGenesis() GenesisState {
	return NewGenesisState(DefaultParams(), nil, DefaultMaxElections, sdk.NewInt64Coin(DefaultFeeDenom, 0))
}

// Validate performs a validation check on the genesis parameters
func (m GenesisState) Validate() error {
	if err := m.Params.Validate(); err != nil {
		return getValidateError(err)
	}

	if len(m.Authority) > 0 {
		if err := sdk.VerifyAddressFormat(m.Authority); err != nil {
			return getValidateError(sdkerrors.Wrap(err, "authority"))
		}
	}

	if !m.CreationFee.IsValid() {
		return getValidateError(fmt.Errorf("invalid creation fee %s", m.CreationFee.String()))
	}

	names := make(map[string]bool, len(m.Elections))
	for i, election := range m.Elections {
		if election.ID != uint64(i) {
			return getValidateError(fmt.Errorf("election ids must be dense and ordered, got %d at position %d", election.ID, i))
		}
		if err := election.Validate(); err != nil {
			return getValidateError(err)
		}
		if names[election.Name] {
			return getValidateError(fmt.Errorf("duplicate election name %s", election.Name))
		}
		names[election.Name] = true
	}

	voters := make(map[string]bool, len(m.Voters))
	for _, voter := range m.Voters {
		if err := voter.Validate(); err != nil {
			return getValidateError(err)
		}
		if voters[voter.Address.String()] {
			return getValidateError(fmt.Errorf("duplicate voter %s", voter.Address.String()))
		}
		voters[voter.Address.String()] = true
	}

	for _, record := range m.UpdateRecords {
		if record.ElectionID >= uint64(len(m.Elections)) {
			return getValidateError(fmt.Errorf("update record for unknown election %d", record.ElectionID))
		}
	}

	for _, index := range m.VotedIndexes {
		if !voters[index.Voter.String()] {
			return getValidateError(fmt.Errorf("voted index for unregistered voter %s", index.Voter.String()))
		}
	}

	for _, vote := range m.Votes {
		if err := vote.Validate(); err != nil {
			return getValidateError(err)
		}
		if vote.ElectionID >= uint64(len(m.Elections)) {
			return getValidateError(fmt.Errorf("vote for unknown election %d", vote.ElectionID))
		}
		if !voters[vote.Voter.String()] {
			return getValidateError(fmt.Errorf("vote by unregistered voter %s", vote.Voter.String()))
		}
	}

	// a tally may reference an option the election no longer declares: updates
	// rewrite the option list but never delete counters
	for _, tally := range m.Tallies {
		if tally.ElectionID >= uint64(len(m.Elections)) {
			return getValidateError(fmt.Errorf("tally for unknown election %d", tally.ElectionID))
		}
		if tally.Option == "" {
			return getValidateError(fmt.Errorf("tally with empty option for election %d", tally.ElectionID))
		}
	}

	return nil
}

func getValidateError(err error) error {
	return sdkerrors.Wrapf(err, "genesis state for module %s is invalid", ModuleName)
}
