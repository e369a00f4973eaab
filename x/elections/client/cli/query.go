package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cobra"

	"github.com/vocalis-network/vocalis-core/x/elections/keeper"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(queryRoute string) *cobra.Command {
	electionsQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	electionsQueryCmd.AddCommand(
		GetCmdElection(queryRoute),
		GetCmdElectionByName(queryRoute),
		GetCmdCount(queryRoute),
		GetCmdVoter(queryRoute),
		GetCmdVote(queryRoute),
		GetCmdTally(queryRoute),
		GetCmdWinner(queryRoute),
		GetCmdQuorum(queryRoute),
		GetCmdParams(queryRoute),
	)

	return electionsQueryCmd
}

// GetCmdElection returns the query for an election by id
func GetCmdElection(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "election [id]",
		Short: "Query an election by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, keeper.QElection, args[0]), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve election")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdElectionByName returns the query for an election by name
func GetCmdElectionByName(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [name]",
		Short: "Query an election by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, keeper.QElectionByName, args[0]), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve election")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdCount returns the query for the number of elections created so far
func GetCmdCount(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Query the number of elections created so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", queryRoute, keeper.QCount), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve election count")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdVoter returns the query for a registered voter
func GetCmdVoter(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voter [address]",
		Short: "Query a registered voter and their delegate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, keeper.QVoter, args[0]), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve voter")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdVote returns the query for a voter's ballot in an election
func GetCmdVote(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [election id] [voter]",
		Short: "Query a voter's ballot in an election",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s/%s", queryRoute, keeper.QVote, args[0], args[1]), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve vote")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdTally returns the query for an option's revealed vote count
func GetCmdTally(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally [election id] [option]",
		Short: "Query the revealed vote count for an option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s/%s", queryRoute, keeper.QTally, args[0], args[1]), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve tally")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdWinner returns the query for an election's winning option
func GetCmdWinner(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winner [election id]",
		Short: "Query the first option in declaration order whose tally meets the threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, keeper.QWinner, args[0]), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve winner")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuorum returns the query that checks an election's quorum
func GetCmdQuorum(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quorum [election id]",
		Short: "Check whether an election's revealed votes meet its quorum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, keeper.QQuorum, args[0]), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve quorum")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdParams returns the elections module params
func GetCmdParams(queryRoute string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Returns the params for the elections module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", queryRoute, keeper.QParams), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve params")
			}

			return cliCtx.PrintString(string(res))
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
