package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
)

// field bounds enforced at election creation and update
const (
	MaxNameLength         = 100
	MinVoterCap           = 1
	MaxVoterCap           = 1000
	MaxOptionCount        = 10
	MaxOptionLength       = 50
	MaxAnonymityLevel     = 3
	MaxRevealPeriod       = 60
	MaxJurisdictionLength = 50
)

// ElectionKind classifies who an election is meant for. The set is fixed.
type ElectionKind string

// election kinds
const (
	KindPublic  ElectionKind = "public"
	KindPrivate ElectionKind = "private"
	KindDAO     ElectionKind = "dao"
)

// IsValid returns true if the kind is a member of the fixed enumeration
func (k ElectionKind) IsValid() bool {
	switch k {
	case KindPublic, KindPrivate, KindDAO:
		return true
	default:
		return false
	}
}

// SettlementCurrency labels the currency an election settles in. The set is fixed.
type SettlementCurrency string

// settlement currencies
const (
	CurrencySTX SettlementCurrency = "STX"
	CurrencyBTC SettlementCurrency = "BTC"
	CurrencyETH SettlementCurrency = "ETH"
	CurrencyUSD SettlementCurrency = "USD"
)

// IsValid returns true if the currency is a member of the fixed enumeration
func (c SettlementCurrency) IsValid() bool {
	switch c {
	case CurrencySTX, CurrencyBTC, CurrencyETH, CurrencyUSD:
		return true
	default:
		return false
	}
}

// Election is the registry record for a single election. ID and Name are both
// unique; everything except Name, MaxVoters and Options is immutable after creation.
type Election struct {
	ID             uint64
	Name           string
	MaxVoters      int64
	Options        []string
	Duration       int64
	Quorum         int64
	Threshold      int64
	Kind           ElectionKind
	AnonymityLevel int64
	RevealPeriod   int64
	Jurisdiction   string
	Currency       SettlementCurrency
	MinVotes       int64
	MaxVotes       int64
	CreatedAt      int64
	UpdatedAt      int64
	Creator        sdk.AccAddress
	Open           bool
}

// VotingOpenAt reports whether the voting window [CreatedAt, CreatedAt+Duration]
// contains the given height and the election has not been closed
func (e Election) VotingOpenAt(height int64) bool {
	return e.Open && height >= e.CreatedAt && height <= e.CreatedAt+e.Duration
}

// RevealOpenAt reports whether the reveal window (CreatedAt+Duration, CreatedAt+Duration+RevealPeriod]
// contains the given height
func (e Election) RevealOpenAt(height int64) bool {
	end := e.CreatedAt + e.Duration
	return height > end && height <= end+e.RevealPeriod
}

// HasOption reports whether label is one of the election's declared options
func (e Election) HasOption(label string) bool {
	for _, option := range e.Options {
		if option == label {
			return true
		}
	}
	return false
}

// Validate checks all election fields against their bounds, in declaration order.
// The first violated bound determines the returned error.
func (e Election) Validate() error {
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	if err := ValidateMaxVoters(e.MaxVoters); err != nil {
		return err
	}
	if err := ValidateOptions(e.Options); err != nil {
		return err
	}
	if e.Duration <= 0 {
		return sdkerrors.Wrap(ErrInvalidDuration, "duration must be greater than 0")
	}
	if e.Quorum < 0 || e.Quorum > 100 {
		return sdkerrors.Wrapf(ErrInvalidQuorum, "quorum %d not in [0,100]", e.Quorum)
	}
	if e.Threshold < 1 || e.Threshold > 100 {
		return sdkerrors.Wrapf(ErrInvalidThreshold, "threshold %d not in [1,100]", e.Threshold)
	}
	if !e.Kind.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidElectionKind, "%s", e.Kind)
	}
	if e.AnonymityLevel < 0 || e.AnonymityLevel > MaxAnonymityLevel {
		return sdkerrors.Wrapf(ErrInvalidAnonymityLevel, "level %d not in [0,%d]", e.AnonymityLevel, MaxAnonymityLevel)
	}
	if e.RevealPeriod < 0 || e.RevealPeriod > MaxRevealPeriod {
		return sdkerrors.Wrapf(ErrInvalidRevealPeriod, "period %d not in [0,%d]", e.RevealPeriod, MaxRevealPeriod)
	}
	if e.Jurisdiction == "" || len(e.Jurisdiction) > MaxJurisdictionLength {
		return sdkerrors.Wrap(ErrInvalidJurisdiction, "jurisdiction must be non-empty and at most 50 characters")
	}
	if !e.Currency.IsValid() {
		return sdkerrors.Wrapf(ErrInvalidCurrency, "%s", e.Currency)
	}
	if e.MinVotes < 1 {
		return sdkerrors.Wrap(ErrInvalidMinVotes, "minimum vote count must be at least 1")
	}
	if e.MaxVotes < e.MinVotes {
		return sdkerrors.Wrapf(ErrInvalidMaxVotes, "maximum vote count %d below minimum %d", e.MaxVotes, e.MinVotes)
	}
	return nil
}

// ValidateName checks the election name bound
func ValidateName(name string) error {
	if name == "" || len(name) > MaxNameLength {
		return sdkerrors.Wrap(ErrInvalidParam, "name must be non-empty and at most 100 characters")
	}
	return nil
}

// ValidateMaxVoters checks the voter capacity bound
func ValidateMaxVoters(maxVoters int64) error {
	if maxVoters < MinVoterCap || maxVoters > MaxVoterCap {
		return sdkerrors.Wrapf(ErrInvalidMaxVoters, "%d not in [%d,%d]", maxVoters, MinVoterCap, MaxVoterCap)
	}
	return nil
}

// ValidateOptions checks the option list bounds: 1 to 10 distinct non-empty labels
// of at most 50 characters each
func ValidateOptions(options []string) error {
	if len(options) < 1 || len(options) > MaxOptionCount {
		return sdkerrors.Wrapf(ErrInvalidOptions, "%d options not in [1,%d]", len(options), MaxOptionCount)
	}
	seen := make(map[string]bool, len(options))
	for _, option := range options {
		if option == "" || len(option) > MaxOptionLength {
			return sdkerrors.Wrapf(ErrInvalidOptions, "option label %q must be non-empty and at most %d characters", option, MaxOptionLength)
		}
		if seen[option] {
			return sdkerrors.Wrapf(ErrInvalidOptions, "duplicate option label %q", option)
		}
		seen[option] = true
	}
	return nil
}

// UpdateRecord is the last-update audit snapshot for an election.
// It is overwritten on every successful update.
type UpdateRecord struct {
	ElectionID   uint64
	NewName      string
	NewMaxVoters int64
	NewOptions   []string
	UpdatedAt    int64
	UpdatedBy    sdk.AccAddress
}

// Voter is the directory record for a registered voter identity.
// Registration is monotonic; only the delegate field is ever rewritten.
type Voter struct {
	Address   sdk.AccAddress
	VoiceHash []byte
	// Delegate is advisory metadata. It is never dereferenced, so self-delegation
	// and cycles are allowed.
	Delegate sdk.AccAddress
}

// Validate checks the voter record for genesis import
func (v Voter) Validate() error {
	if err := sdk.VerifyAddressFormat(v.Address); err != nil {
		return sdkerrors.Wrap(err, "voter address")
	}
	if len(v.VoiceHash) != exported.HashLength {
		return fmt.Errorf("voice hash must be %d bytes", exported.HashLength)
	}
	return nil
}

// Vote is a single commit-reveal ballot, keyed by (election, voter).
// Choice and Salt are set exactly once, when Revealed flips to true.
type Vote struct {
	ElectionID uint64
	Voter      sdk.AccAddress
	Commitment []byte
	Revealed   bool
	Choice     string
	Salt       []byte
}

// Validate checks the vote record for genesis import
func (v Vote) Validate() error {
	if err := sdk.VerifyAddressFormat(v.Voter); err != nil {
		return sdkerrors.Wrap(err, "voter address")
	}
	if len(v.Commitment) != exported.HashLength {
		return fmt.Errorf("commitment must be %d bytes", exported.HashLength)
	}
	if !v.Revealed && (v.Choice != "" || len(v.Salt) > 0) {
		return fmt.Errorf("unrevealed vote for election %d must not carry a choice or salt", v.ElectionID)
	}
	return nil
}

// VotedIndex lists the elections a voter has already submitted a ballot for.
// It only ever grows.
type VotedIndex struct {
	Voter       sdk.AccAddress
	ElectionIDs []uint64
}

// Has reports whether the index contains the given election
func (i VotedIndex) Has(electionID uint64) bool {
	for _, id := range i.ElectionIDs {
		if id == electionID {
			return true
		}
	}
	return false
}
