package types

// event attributes
const (
	AttributeModule = ModuleName

	AttributeSetAuthority    = "setAuthority"
	AttributeSetMaxElections = "setMaxElections"
	AttributeSetCreationFee  = "setCreationFee"
	AttributeRegisterVoter   = "registerVoter"
	AttributeDelegateVote    = "delegateVote"
	AttributeCreateElection  = "createElection"
	AttributeUpdateElection  = "updateElection"
	AttributeSubmitVote      = "submitVote"
	AttributeRevealVote      = "revealVote"

	AttributeElectionID   = "electionId"
	AttributeElectionName = "electionName"
	AttributeDelegate     = "delegate"
	AttributeOption       = "option"
	AttributeFee          = "fee"
	AttributeAuthority    = "authority"
	AttributeMaxElections = "maxElections"
	AttributeHeight       = "height"
)
