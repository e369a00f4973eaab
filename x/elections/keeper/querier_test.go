package keeper

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/vocalis-network/vocalis-core/testutils"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

func TestQuerier_Election(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("queried"))
	require.NoError(t, err)

	querier := NewQuerier(k)

	bz, err := querier(ctx, []string{QElection, strconv.FormatUint(id, 10)}, abci.RequestQuery{})
	require.NoError(t, err)

	var election types.Election
	require.NoError(t, json.Unmarshal(bz, &election))
	assert.Equal(t, "queried", election.Name)

	bz, err = querier(ctx, []string{QElectionByName, "queried"}, abci.RequestQuery{})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bz, &election))
	assert.Equal(t, id, election.ID)

	_, err = querier(ctx, []string{QElection, "42"}, abci.RequestQuery{})
	assert.True(t, errors.Is(err, types.ErrElectionNotFound))
}

func TestQuerier_Count(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	querier := NewQuerier(k)

	bz, err := querier(ctx, []string{QCount}, abci.RequestQuery{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(bz))

	_, err = k.CreateElection(ctx, testutils.RandAddress(), newElection("counted"))
	require.NoError(t, err)

	bz, err = querier(ctx, []string{QCount}, abci.RequestQuery{})
	require.NoError(t, err)
	assert.Equal(t, "1", string(bz))
}

func TestQuerier_WinnerAndQuorum(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("decided"))
	require.NoError(t, err)
	castVotes(t, ctx, k, id, []string{"yes"}, 1)

	querier := NewQuerier(k)

	bz, err := querier(ctx, []string{QWinner, strconv.FormatUint(id, 10)}, abci.RequestQuery{})
	require.NoError(t, err)

	var winner struct {
		Winner string `json:"winner"`
		Found  bool   `json:"found"`
	}
	require.NoError(t, json.Unmarshal(bz, &winner))
	assert.True(t, winner.Found)
	assert.Equal(t, "yes", winner.Winner)

	bz, err = querier(ctx, []string{QQuorum, strconv.FormatUint(id, 10)}, abci.RequestQuery{})
	require.NoError(t, err)

	var quorum struct {
		Required uint64 `json:"required"`
		Revealed uint64 `json:"revealed"`
		Met      bool   `json:"met"`
	}
	require.NoError(t, json.Unmarshal(bz, &quorum))
	assert.EqualValues(t, 5, quorum.Required)
	assert.EqualValues(t, 1, quorum.Revealed)
	assert.False(t, quorum.Met)
}

func TestQuerier_Tally(t *testing.T) {
	ctx, k, _ := setup(1)
	initGovernance(ctx, k, testutils.RandAddress())

	id, err := k.CreateElection(ctx, testutils.RandAddress(), newElection("tallied"))
	require.NoError(t, err)
	castVotes(t, ctx, k, id, []string{"yes", "yes"}, 2)

	querier := NewQuerier(k)

	bz, err := querier(ctx, []string{QTally, strconv.FormatUint(id, 10), "yes"}, abci.RequestQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2", string(bz))
}

func TestQuerier_UnknownEndpoint(t *testing.T) {
	ctx, k, _ := setup(1)

	_, err := NewQuerier(k)(ctx, []string{"nonsense"}, abci.RequestQuery{})
	assert.Error(t, err)
}
