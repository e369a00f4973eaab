package keeper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// Query labels
const (
	QElection       = "election"
	QElectionByName = "name"
	QCount          = "count"
	QVoter          = "voter"
	QVote           = "vote"
	QTally          = "tally"
	QWinner         = "winner"
	QQuorum         = "quorum"
	QParams         = "params"
)

// NewQuerier returns a new querier for the elections module
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case QElection:
			return queryElection(ctx, k, path[1])
		case QElectionByName:
			return queryElectionByName(ctx, k, path[1])
		case QCount:
			return queryCount(ctx, k)
		case QVoter:
			return queryVoter(ctx, k, path[1])
		case QVote:
			return queryVote(ctx, k, path[1], path[2])
		case QTally:
			return queryTally(ctx, k, path[1], path[2])
		case QWinner:
			return queryWinner(ctx, k, path[1])
		case QQuorum:
			return queryQuorum(ctx, k, path[1])
		case QParams:
			return queryParams(ctx, k)
		default:
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, fmt.Sprintf("unknown elections query endpoint: %s", path[0]))
		}
	}
}

func queryElection(ctx sdk.Context, k Keeper, idStr string) ([]byte, error) {
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrElectionNotFound, err.Error())
	}

	election, ok := k.GetElection(ctx, id)
	if !ok {
		return nil, types.ErrElectionNotFound
	}

	return toJSON(election)
}

func queryElectionByName(ctx sdk.Context, k Keeper, name string) ([]byte, error) {
	election, ok := k.GetElectionByName(ctx, name)
	if !ok {
		return nil, sdkerrors.Wrap(types.ErrElectionNotFound, name)
	}

	return toJSON(election)
}

func queryCount(ctx sdk.Context, k Keeper) ([]byte, error) {
	return []byte(strconv.FormatUint(k.GetElectionCount(ctx), 10)), nil
}

func queryVoter(ctx sdk.Context, k Keeper, address string) ([]byte, error) {
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	voter, ok := k.GetVoter(ctx, addr)
	if !ok {
		return nil, types.ErrNotRegistered
	}

	delegate := ""
	if len(voter.Delegate) > 0 {
		delegate = voter.Delegate.String()
	}

	reply := struct {
		Address  string `json:"address"`
		Delegate string `json:"delegate,omitempty"`
	}{
		Address:  voter.Address.String(),
		Delegate: delegate,
	}

	return toJSON(reply)
}

func queryVote(ctx sdk.Context, k Keeper, idStr string, address string) ([]byte, error) {
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrElectionNotFound, err.Error())
	}

	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	vote, ok := k.GetVote(ctx, id, addr)
	if !ok {
		return nil, types.ErrVoteNotFound
	}

	reply := struct {
		ElectionID uint64 `json:"election_id"`
		Voter      string `json:"voter"`
		Revealed   bool   `json:"revealed"`
		Choice     string `json:"choice,omitempty"`
	}{
		ElectionID: vote.ElectionID,
		Voter:      vote.Voter.String(),
		Revealed:   vote.Revealed,
		Choice:     vote.Choice,
	}

	return toJSON(reply)
}

func queryTally(ctx sdk.Context, k Keeper, idStr string, option string) ([]byte, error) {
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrElectionNotFound, err.Error())
	}

	return []byte(strconv.FormatUint(k.GetTally(ctx, id, option), 10)), nil
}

func queryWinner(ctx sdk.Context, k Keeper, idStr string) ([]byte, error) {
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrElectionNotFound, err.Error())
	}

	winner, found, err := k.ComputeWinner(ctx, id)
	if err != nil {
		return nil, err
	}

	reply := struct {
		Winner string `json:"winner,omitempty"`
		Found  bool   `json:"found"`
	}{
		Winner: winner,
		Found:  found,
	}

	return toJSON(reply)
}

func queryQuorum(ctx sdk.Context, k Keeper, idStr string) ([]byte, error) {
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrElectionNotFound, err.Error())
	}

	election, ok := k.GetElection(ctx, id)
	if !ok {
		return nil, types.ErrElectionNotFound
	}

	revealed := k.RevealedCount(ctx, id)
	met := k.CheckQuorum(ctx, id, revealed) == nil

	reply := struct {
		Required uint64 `json:"required"`
		Revealed uint64 `json:"revealed"`
		Met      bool   `json:"met"`
	}{
		Required: uint64(election.MaxVoters) * uint64(election.Quorum) / 100,
		Revealed: revealed,
		Met:      met,
	}

	return toJSON(reply)
}

func queryParams(ctx sdk.Context, k Keeper) ([]byte, error) {
	return toJSON(k.GetParams(ctx))
}

func toJSON(v interface{}) ([]byte, error) {
	buff := bytes.NewBuffer([]byte{})
	enc := json.NewEncoder(buff)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
