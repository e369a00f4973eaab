package types

import sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

// module errors
var (
	// Code 1 is a reserved code for internal errors and should not be used for anything else
	_ = sdkerrors.Register(ModuleName, 1, "internal error")

	// governance configuration
	ErrAuthorityNotVerified = sdkerrors.Register(ModuleName, 2, "no election authority configured")
	ErrAlreadyConfigured    = sdkerrors.Register(ModuleName, 3, "election authority already configured")
	ErrInvalidPrincipal     = sdkerrors.Register(ModuleName, 4, "invalid principal")

	// field validation, one code per field
	ErrInvalidParam          = sdkerrors.Register(ModuleName, 5, "invalid parameter")
	ErrInvalidMaxVoters      = sdkerrors.Register(ModuleName, 6, "max voters out of bounds")
	ErrInvalidOptions        = sdkerrors.Register(ModuleName, 7, "invalid option list")
	ErrInvalidDuration       = sdkerrors.Register(ModuleName, 8, "invalid voting duration")
	ErrInvalidQuorum         = sdkerrors.Register(ModuleName, 9, "quorum percentage out of bounds")
	ErrInvalidThreshold      = sdkerrors.Register(ModuleName, 10, "threshold percentage out of bounds")
	ErrInvalidElectionKind   = sdkerrors.Register(ModuleName, 11, "unknown election kind")
	ErrInvalidAnonymityLevel = sdkerrors.Register(ModuleName, 12, "anonymity level out of bounds")
	ErrInvalidRevealPeriod   = sdkerrors.Register(ModuleName, 13, "reveal period out of bounds")
	ErrInvalidJurisdiction   = sdkerrors.Register(ModuleName, 14, "invalid jurisdiction")
	ErrInvalidCurrency       = sdkerrors.Register(ModuleName, 15, "unknown settlement currency")
	ErrInvalidMinVotes       = sdkerrors.Register(ModuleName, 16, "invalid minimum vote count")
	ErrInvalidMaxVotes       = sdkerrors.Register(ModuleName, 17, "invalid maximum vote count")
	ErrInvalidUpdateParam    = sdkerrors.Register(ModuleName, 18, "invalid update parameters")

	// capacity
	ErrMaxElectionsExceeded = sdkerrors.Register(ModuleName, 19, "maximum election count exceeded")

	// identity and registry state
	ErrNotAuthorized         = sdkerrors.Register(ModuleName, 20, "caller is not authorized")
	ErrNotRegistered         = sdkerrors.Register(ModuleName, 21, "voter is not registered")
	ErrAlreadyRegistered     = sdkerrors.Register(ModuleName, 22, "voter already registered")
	ErrInvalidDelegate       = sdkerrors.Register(ModuleName, 23, "delegate is not a registered voter")
	ErrElectionNotFound      = sdkerrors.Register(ModuleName, 24, "election not found")
	ErrElectionAlreadyExists = sdkerrors.Register(ModuleName, 25, "election name already exists")

	// ballot protocol
	ErrVotingClosed      = sdkerrors.Register(ModuleName, 26, "voting window is closed")
	ErrAlreadyVoted      = sdkerrors.Register(ModuleName, 27, "voter already voted in this election")
	ErrVoteNotFound      = sdkerrors.Register(ModuleName, 28, "no vote found for this election and voter")
	ErrAlreadyRevealed   = sdkerrors.Register(ModuleName, 29, "vote already revealed")
	ErrInvalidCommitment = sdkerrors.Register(ModuleName, 30, "reveal does not match commitment")
	ErrInvalidOption     = sdkerrors.Register(ModuleName, 31, "option is not part of this election")
	ErrRevealNotOpen     = sdkerrors.Register(ModuleName, 32, "reveal window is not open")

	// tally
	ErrQuorumNotMet = sdkerrors.Register(ModuleName, 33, "quorum not met")
)
