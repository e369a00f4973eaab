package rest

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/gorilla/mux"

	"github.com/vocalis-network/vocalis-core/x/elections/keeper"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// RegisterRoutes registers this module's REST routes with the given router
func RegisterRoutes(cliCtx client.Context, r *mux.Router) {
	r.HandleFunc(fmt.Sprintf("/tx/%s/authority", types.ModuleName), setAuthorityHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/max-elections", types.ModuleName), setMaxElectionsHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/creation-fee", types.ModuleName), setCreationFeeHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/register", types.ModuleName), registerVoterHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/delegate", types.ModuleName), delegateVoteHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/create", types.ModuleName), createElectionHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/update/{id}", types.ModuleName), updateElectionHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/submit/{id}", types.ModuleName), submitVoteHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/reveal/{id}", types.ModuleName), revealVoteHandlerFn(cliCtx)).Methods("POST")

	r.HandleFunc(fmt.Sprintf("/query/%s/election/{id}", types.ModuleName), queryHandlerFn(cliCtx, keeper.QElection, "id")).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/name/{name}", types.ModuleName), queryHandlerFn(cliCtx, keeper.QElectionByName, "name")).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/count", types.ModuleName), queryHandlerFn(cliCtx, keeper.QCount, "")).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/voter/{address}", types.ModuleName), queryHandlerFn(cliCtx, keeper.QVoter, "address")).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/vote/{id}/{address}", types.ModuleName), queryVoteHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/tally/{id}/{option}", types.ModuleName), queryTallyHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/winner/{id}", types.ModuleName), queryHandlerFn(cliCtx, keeper.QWinner, "id")).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/quorum/{id}", types.ModuleName), queryHandlerFn(cliCtx, keeper.QQuorum, "id")).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/params", types.ModuleName), queryHandlerFn(cliCtx, keeper.QParams, "")).Methods("GET")
}

// ReqSetAuthority represents a request to configure the election authority
type ReqSetAuthority struct {
	BaseReq   rest.BaseReq `json:"base_req" yaml:"base_req"`
	Authority string       `json:"authority" yaml:"authority"`
}

// ReqSetMaxElections represents a request to cap the election count
type ReqSetMaxElections struct {
	BaseReq      rest.BaseReq `json:"base_req" yaml:"base_req"`
	MaxElections uint64       `json:"max_elections" yaml:"max_elections"`
}

// ReqSetCreationFee represents a request to set the election creation fee
type ReqSetCreationFee struct {
	BaseReq rest.BaseReq `json:"base_req" yaml:"base_req"`
	Fee     string       `json:"fee" yaml:"fee"`
}

// ReqRegisterVoter represents a request to register the sender as a voter
type ReqRegisterVoter struct {
	BaseReq   rest.BaseReq `json:"base_req" yaml:"base_req"`
	VoiceHash string       `json:"voice_hash" yaml:"voice_hash"`
}

// ReqDelegateVote represents a request to record a delegate for the sender
type ReqDelegateVote struct {
	BaseReq  rest.BaseReq `json:"base_req" yaml:"base_req"`
	Delegate string       `json:"delegate" yaml:"delegate"`
}

// ReqCreateElection represents a request to create an election
type ReqCreateElection struct {
	BaseReq        rest.BaseReq `json:"base_req" yaml:"base_req"`
	Name           string       `json:"name" yaml:"name"`
	MaxVoters      int64        `json:"max_voters" yaml:"max_voters"`
	Options        []string     `json:"options" yaml:"options"`
	Duration       int64        `json:"duration" yaml:"duration"`
	Quorum         int64        `json:"quorum" yaml:"quorum"`
	Threshold      int64        `json:"threshold" yaml:"threshold"`
	Kind           string       `json:"kind" yaml:"kind"`
	AnonymityLevel int64        `json:"anonymity_level" yaml:"anonymity_level"`
	RevealPeriod   int64        `json:"reveal_period" yaml:"reveal_period"`
	Jurisdiction   string       `json:"jurisdiction" yaml:"jurisdiction"`
	Currency       string       `json:"currency" yaml:"currency"`
	MinVotes       int64        `json:"min_votes" yaml:"min_votes"`
	MaxVotes       int64        `json:"max_votes" yaml:"max_votes"`
}

// ReqUpdateElection represents a request to update an election's mutable fields
type ReqUpdateElection struct {
	BaseReq   rest.BaseReq `json:"base_req" yaml:"base_req"`
	Name      string       `json:"name" yaml:"name"`
	MaxVoters int64        `json:"max_voters" yaml:"max_voters"`
	Options   []string     `json:"options" yaml:"options"`
}

// ReqSubmitVote represents a request to submit a vote commitment
type ReqSubmitVote struct {
	BaseReq    rest.BaseReq `json:"base_req" yaml:"base_req"`
	Commitment string       `json:"commitment" yaml:"commitment"`
}

// ReqRevealVote represents a request to reveal a submitted vote
type ReqRevealVote struct {
	BaseReq rest.BaseReq `json:"base_req" yaml:"base_req"`
	Option  string       `json:"option" yaml:"option"`
	Salt    string       `json:"salt" yaml:"salt"`
}

func setAuthorityHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqSetAuthority
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}

		authority, err := sdk.AccAddressFromBech32(req.Authority)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgSetAuthority(sender, authority)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func setMaxElectionsHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqSetMaxElections
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}

		msg := types.NewMsgSetMaxElections(sender, req.MaxElections)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func setCreationFeeHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqSetCreationFee
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}

		fee, err := sdk.ParseCoinNormalized(req.Fee)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgSetCreationFee(sender, fee)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func registerVoterHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqRegisterVoter
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}

		voiceHash, err := hex.DecodeString(req.VoiceHash)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgRegisterVoter(sender, voiceHash)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func delegateVoteHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqDelegateVote
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}

		delegate, err := sdk.AccAddressFromBech32(req.Delegate)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgDelegateVote(sender, delegate)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func createElectionHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqCreateElection
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}

		msg := &types.MsgCreateElection{
			Sender:         sender,
			Name:           req.Name,
			MaxVoters:      req.MaxVoters,
			Options:        req.Options,
			Duration:       req.Duration,
			Quorum:         req.Quorum,
			Threshold:      req.Threshold,
			Kind:           types.ElectionKind(req.Kind),
			AnonymityLevel: req.AnonymityLevel,
			RevealPeriod:   req.RevealPeriod,
			Jurisdiction:   req.Jurisdiction,
			Currency:       types.SettlementCurrency(req.Currency),
			MinVotes:       req.MinVotes,
			MaxVotes:       req.MaxVotes,
		}
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func updateElectionHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqUpdateElection
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}
		id, ok := extractElectionID(w, r)
		if !ok {
			return
		}

		msg := types.NewMsgUpdateElection(sender, id, req.Name, req.MaxVoters, req.Options)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func submitVoteHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqSubmitVote
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}
		id, ok := extractElectionID(w, r)
		if !ok {
			return
		}

		commitment, err := hex.DecodeString(req.Commitment)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgSubmitVote(sender, id, commitment)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func revealVoteHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqRevealVote
		if !rest.ReadRESTReq(w, r, cliCtx.LegacyAmino, &req) {
			return
		}
		req.BaseReq = req.BaseReq.Sanitize()
		if !req.BaseReq.ValidateBasic(w) {
			return
		}
		sender, ok := extractReqSender(w, req.BaseReq)
		if !ok {
			return
		}
		id, ok := extractElectionID(w, r)
		if !ok {
			return
		}

		salt, err := hex.DecodeString(req.Salt)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgRevealVote(sender, id, req.Option, salt)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		tx.WriteGeneratedTxResponse(cliCtx, w, req.BaseReq, msg)
	}
}

func queryHandlerFn(cliCtx client.Context, endpoint string, pathVar string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
		if !ok {
			return
		}

		path := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint)
		if pathVar != "" {
			path = fmt.Sprintf("%s/%s", path, mux.Vars(r)[pathVar])
		}

		res, height, err := cliCtx.QueryWithData(path, nil)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		cliCtx = cliCtx.WithHeight(height)
		rest.PostProcessResponse(w, cliCtx, res)
	}
}

func queryVoteHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
		if !ok {
			return
		}

		vars := mux.Vars(r)
		path := fmt.Sprintf("custom/%s/%s/%s/%s", types.QuerierRoute, keeper.QVote, vars["id"], vars["address"])

		res, height, err := cliCtx.QueryWithData(path, nil)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		cliCtx = cliCtx.WithHeight(height)
		rest.PostProcessResponse(w, cliCtx, res)
	}
}

func queryTallyHandlerFn(cliCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cliCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, cliCtx, r)
		if !ok {
			return
		}

		vars := mux.Vars(r)
		path := fmt.Sprintf("custom/%s/%s/%s/%s", types.QuerierRoute, keeper.QTally, vars["id"], vars["option"])

		res, height, err := cliCtx.QueryWithData(path, nil)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		cliCtx = cliCtx.WithHeight(height)
		rest.PostProcessResponse(w, cliCtx, res)
	}
}

func extractReqSender(w http.ResponseWriter, req rest.BaseReq) (sdk.AccAddress, bool) {
	sender, err := sdk.AccAddressFromBech32(req.From)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return sender, true
}

func extractElectionID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return 0, false
	}

	return id, true
}
