package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	legacyTx "github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cobra"

	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd() *cobra.Command {
	electionsTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	electionsTxCmd.AddCommand(
		GetCmdSetAuthority(),
		GetCmdSetMaxElections(),
		GetCmdSetCreationFee(),
		GetCmdRegisterVoter(),
		GetCmdDelegateVote(),
		GetCmdCreateElection(),
		GetCmdUpdateElection(),
		GetCmdSubmitVote(),
		GetCmdRevealVote(),
	)

	return electionsTxCmd
}

// GetCmdSetAuthority returns the command to configure the election authority
func GetCmdSetAuthority() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-authority [address]",
		Short: "Configure the election authority that collects creation fees (can only succeed once)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			authority, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(types.ErrInvalidPrincipal, err.Error())
			}

			msg := types.NewMsgSetAuthority(clientCtx.FromAddress, authority)
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdSetMaxElections returns the command to cap the election count
func GetCmdSetMaxElections() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-max-elections [count]",
		Short: "Set the maximum number of elections that can be created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			count, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetMaxElections(clientCtx.FromAddress, count)
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdSetCreationFee returns the command to set the election creation fee
func GetCmdSetCreationFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-creation-fee [amount]",
		Short: "Set the fee transferred to the authority on every election creation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fee, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgSetCreationFee(clientCtx.FromAddress, fee)
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdRegisterVoter returns the command to register the sender as a voter
func GetCmdRegisterVoter() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [voice hash]",
		Short: "Register the sender as a voter with a hex-encoded 32-byte voice hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			voiceHash, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgRegisterVoter(clientCtx.FromAddress, voiceHash)
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdDelegateVote returns the command to record a delegate
func GetCmdDelegateVote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delegate [address]",
		Short: "Record another registered voter as the sender's delegate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			delegate, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
			}

			msg := types.NewMsgDelegateVote(clientCtx.FromAddress, delegate)
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdCreateElection returns the command to create an election
func GetCmdCreateElection() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name] [max voters] [options] [duration] [quorum] [threshold] [kind] [anonymity] [reveal period] [jurisdiction] [currency] [min votes] [max votes]",
		Short: "Create a new election; options are comma-separated labels",
		Args:  cobra.ExactArgs(13),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			numeric := make([]int64, 0, 7)
			for _, i := range []int{1, 3, 4, 5, 7, 8} {
				n, err := strconv.ParseInt(args[i], 10, 64)
				if err != nil {
					return err
				}
				numeric = append(numeric, n)
			}
			minVotes, err := strconv.ParseInt(args[11], 10, 64)
			if err != nil {
				return err
			}
			maxVotes, err := strconv.ParseInt(args[12], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateElection{
				Sender:         clientCtx.FromAddress,
				Name:           args[0],
				MaxVoters:      numeric[0],
				Options:        strings.Split(args[2], ","),
				Duration:       numeric[1],
				Quorum:         numeric[2],
				Threshold:      numeric[3],
				Kind:           types.ElectionKind(args[6]),
				AnonymityLevel: numeric[4],
				RevealPeriod:   numeric[5],
				Jurisdiction:   args[9],
				Currency:       types.SettlementCurrency(args[10]),
				MinVotes:       minVotes,
				MaxVotes:       maxVotes,
			}
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdUpdateElection returns the command to update an election's mutable fields
func GetCmdUpdateElection() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id] [name] [max voters] [options]",
		Short: "Update an election's name, capacity and options (creator only)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			maxVoters, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return err
			}

			msg := types.NewMsgUpdateElection(clientCtx.FromAddress, id, args[1], maxVoters, strings.Split(args[3], ","))
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdSubmitVote returns the command to submit a vote commitment
func GetCmdSubmitVote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [election id] [commitment]",
		Short: "Submit a hex-encoded 32-byte vote commitment for an election",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			commitment, err := hex.DecodeString(args[1])
			if err != nil {
				return err
			}

			msg := types.NewMsgSubmitVote(clientCtx.FromAddress, id, commitment)
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdRevealVote returns the command to reveal a previously submitted vote
func GetCmdRevealVote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal [election id] [option] [salt]",
		Short: "Reveal the option and hex-encoded 32-byte salt behind a submitted commitment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			salt, err := hex.DecodeString(args[2])
			if err != nil {
				return err
			}

			msg := types.NewMsgRevealVote(clientCtx.FromAddress, id, args[1], salt)
			return legacyTx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
