package elections

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/vocalis-network/vocalis-core/x/elections/keeper"
	"github.com/vocalis-network/vocalis-core/x/elections/types"
)

// NewHandler returns a new handler
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		switch msg := msg.(type) {
		case *types.MsgSetAuthority:
			return handleMsgSetAuthority(ctx, k, msg)
		case *types.MsgSetMaxElections:
			return handleMsgSetMaxElections(ctx, k, msg)
		case *types.MsgSetCreationFee:
			return handleMsgSetCreationFee(ctx, k, msg)
		case *types.MsgRegisterVoter:
			return handleMsgRegisterVoter(ctx, k, msg)
		case *types.MsgDelegateVote:
			return handleMsgDelegateVote(ctx, k, msg)
		case *types.MsgCreateElection:
			return handleMsgCreateElection(ctx, k, msg)
		case *types.MsgUpdateElection:
			return handleMsgUpdateElection(ctx, k, msg)
		case *types.MsgSubmitVote:
			return handleMsgSubmitVote(ctx, k, msg)
		case *types.MsgRevealVote:
			return handleMsgRevealVote(ctx, k, msg)
		default:
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest,
				fmt.Sprintf("unrecognized %s message type: %T", types.ModuleName, msg))
		}
	}
}

func handleMsgSetAuthority(ctx sdk.Context, k keeper.Keeper, msg *types.MsgSetAuthority) (*sdk.Result, error) {
	if err := k.SetAuthority(ctx, msg.Authority); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeSetAuthority),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeAuthority, msg.Authority.String()),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgSetMaxElections(ctx sdk.Context, k keeper.Keeper, msg *types.MsgSetMaxElections) (*sdk.Result, error) {
	if err := k.SetMaxElections(ctx, msg.Sender, msg.MaxElections); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeSetMaxElections),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeMaxElections, strconv.FormatUint(msg.MaxElections, 10)),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgSetCreationFee(ctx sdk.Context, k keeper.Keeper, msg *types.MsgSetCreationFee) (*sdk.Result, error) {
	if err := k.SetCreationFee(ctx, msg.Sender, msg.Fee); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeSetCreationFee),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeFee, msg.Fee.String()),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgRegisterVoter(ctx sdk.Context, k keeper.Keeper, msg *types.MsgRegisterVoter) (*sdk.Result, error) {
	if err := k.RegisterVoter(ctx, msg.Sender, msg.VoiceHash); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeRegisterVoter),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgDelegateVote(ctx sdk.Context, k keeper.Keeper, msg *types.MsgDelegateVote) (*sdk.Result, error) {
	if err := k.DelegateVote(ctx, msg.Sender, msg.Delegate); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeDelegateVote),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeDelegate, msg.Delegate.String()),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgCreateElection(ctx sdk.Context, k keeper.Keeper, msg *types.MsgCreateElection) (*sdk.Result, error) {
	election := types.Election{
		Name:           msg.Name,
		MaxVoters:      msg.MaxVoters,
		Options:        msg.Options,
		Duration:       msg.Duration,
		Quorum:         msg.Quorum,
		Threshold:      msg.Threshold,
		Kind:           msg.Kind,
		AnonymityLevel: msg.AnonymityLevel,
		RevealPeriod:   msg.RevealPeriod,
		Jurisdiction:   msg.Jurisdiction,
		Currency:       msg.Currency,
		MinVotes:       msg.MinVotes,
		MaxVotes:       msg.MaxVotes,
	}

	id, err := k.CreateElection(ctx, msg.Sender, election)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeCreateElection),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeElectionID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeElectionName, msg.Name),
			sdk.NewAttribute(types.AttributeHeight, strconv.FormatInt(ctx.BlockHeight(), 10)),
		),
	)

	return &sdk.Result{
		Data:   []byte(strconv.FormatUint(id, 10)),
		Events: ctx.EventManager().ABCIEvents(),
	}, nil
}

func handleMsgUpdateElection(ctx sdk.Context, k keeper.Keeper, msg *types.MsgUpdateElection) (*sdk.Result, error) {
	if err := k.UpdateElection(ctx, msg.Sender, msg.ElectionID, msg.NewName, msg.NewMaxVoters, msg.NewOptions); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeUpdateElection),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeElectionID, strconv.FormatUint(msg.ElectionID, 10)),
			sdk.NewAttribute(types.AttributeElectionName, msg.NewName),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgSubmitVote(ctx sdk.Context, k keeper.Keeper, msg *types.MsgSubmitVote) (*sdk.Result, error) {
	if err := k.SubmitVote(ctx, msg.Sender, msg.ElectionID, msg.Commitment); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeSubmitVote),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeElectionID, strconv.FormatUint(msg.ElectionID, 10)),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgRevealVote(ctx sdk.Context, k keeper.Keeper, msg *types.MsgRevealVote) (*sdk.Result, error) {
	if err := k.RevealVote(ctx, msg.Sender, msg.ElectionID, msg.Option, msg.Salt); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.AttributeRevealVote),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeElectionID, strconv.FormatUint(msg.ElectionID, 10)),
			sdk.NewAttribute(types.AttributeOption, msg.Option),
		),
	)

	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}
