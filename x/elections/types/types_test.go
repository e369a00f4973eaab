package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vocalis-network/vocalis-core/x/elections/exported"
)

func validElection() Election {
	return Election{
		Name:           "valid",
		MaxVoters:      10,
		Options:        []string{"yes", "no"},
		Duration:       10,
		Quorum:         50,
		Threshold:      1,
		Kind:           KindPublic,
		AnonymityLevel: 1,
		RevealPeriod:   20,
		Jurisdiction:   "global",
		Currency:       CurrencySTX,
		MinVotes:       1,
		MaxVotes:       1,
	}
}

func TestElectionValidate(t *testing.T) {
	assert.NoError(t, validElection().Validate())

	testCases := []struct {
		label    string
		mutate   func(*Election)
		expected error
	}{
		{"empty name", func(e *Election) { e.Name = "" }, ErrInvalidParam},
		{"name too long", func(e *Election) { e.Name = strings.Repeat("x", MaxNameLength+1) }, ErrInvalidParam},
		{"zero voters", func(e *Election) { e.MaxVoters = 0 }, ErrInvalidMaxVoters},
		{"too many voters", func(e *Election) { e.MaxVoters = MaxVoterCap + 1 }, ErrInvalidMaxVoters},
		{"no options", func(e *Election) { e.Options = nil }, ErrInvalidOptions},
		{"duplicate options", func(e *Election) { e.Options = []string{"yes", "yes"} }, ErrInvalidOptions},
		{"empty option label", func(e *Election) { e.Options = []string{"yes", ""} }, ErrInvalidOptions},
		{"zero duration", func(e *Election) { e.Duration = 0 }, ErrInvalidDuration},
		{"negative quorum", func(e *Election) { e.Quorum = -1 }, ErrInvalidQuorum},
		{"quorum over 100", func(e *Election) { e.Quorum = 101 }, ErrInvalidQuorum},
		{"zero threshold", func(e *Election) { e.Threshold = 0 }, ErrInvalidThreshold},
		{"unknown kind", func(e *Election) { e.Kind = "committee" }, ErrInvalidElectionKind},
		{"anonymity too high", func(e *Election) { e.AnonymityLevel = MaxAnonymityLevel + 1 }, ErrInvalidAnonymityLevel},
		{"reveal period too long", func(e *Election) { e.RevealPeriod = MaxRevealPeriod + 1 }, ErrInvalidRevealPeriod},
		{"empty jurisdiction", func(e *Election) { e.Jurisdiction = "" }, ErrInvalidJurisdiction},
		{"unknown currency", func(e *Election) { e.Currency = "EUR" }, ErrInvalidCurrency},
		{"zero min votes", func(e *Election) { e.MinVotes = 0 }, ErrInvalidMinVotes},
		{"max below min", func(e *Election) { e.MinVotes = 3; e.MaxVotes = 2 }, ErrInvalidMaxVotes},
	}

	for _, testCase := range testCases {
		t.Run(testCase.label, func(t *testing.T) {
			election := validElection()
			testCase.mutate(&election)
			assert.True(t, errors.Is(election.Validate(), testCase.expected))
		})
	}
}

func TestElectionValidate_ReportsFirstViolation(t *testing.T) {
	election := validElection()
	election.MaxVoters = 0
	election.Duration = -1

	// max voters precedes duration in the declared field order
	assert.True(t, errors.Is(election.Validate(), ErrInvalidMaxVoters))
}

func TestVotingWindows(t *testing.T) {
	election := validElection()
	election.CreatedAt = 5
	election.Open = true

	// voting window is [5, 15] inclusive
	assert.False(t, election.VotingOpenAt(4))
	assert.True(t, election.VotingOpenAt(5))
	assert.True(t, election.VotingOpenAt(15))
	assert.False(t, election.VotingOpenAt(16))

	// reveal window is (15, 35]
	assert.False(t, election.RevealOpenAt(15))
	assert.True(t, election.RevealOpenAt(16))
	assert.True(t, election.RevealOpenAt(35))
	assert.False(t, election.RevealOpenAt(36))

	election.Open = false
	assert.False(t, election.VotingOpenAt(10))
}

func TestVoteCommitment(t *testing.T) {
	salt := randBytes(exported.HashLength)

	commitment := exported.VoteCommitment("yes", salt)
	assert.Len(t, commitment, exported.HashLength)
	assert.Equal(t, commitment, exported.VoteCommitment("yes", salt))

	assert.NotEqual(t, commitment, exported.VoteCommitment("no", salt))
	assert.NotEqual(t, commitment, exported.VoteCommitment("yes", randBytes(exported.HashLength)))
}

func TestVotedIndexHas(t *testing.T) {
	index := VotedIndex{ElectionIDs: []uint64{0, 2}}

	assert.True(t, index.Has(0))
	assert.True(t, index.Has(2))
	assert.False(t, index.Has(1))
}
