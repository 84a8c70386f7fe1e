package ledger

// Voter identifies who cast a vote on a governance action: a constitutional
// committee member, a DRep, or an SPO, each by credential or pool key hash.
type VoterKind uint8

const (
	VoterConstitutionalCommittee VoterKind = iota
	VoterDRep
	VoterStakePool
)

type Voter struct {
	Kind       VoterKind
	Credential Credential
	PoolKeyHash Hash28
}

// VoteChoice is a single yes/no/abstain vote.
type VoteChoice uint8

const (
	VoteNo VoteChoice = iota
	VoteYes
	VoteAbstain
)

// GovActionID identifies a governance action by the transaction that
// proposed it and the action's index within that transaction's proposal
// list.
type GovActionID struct {
	TransactionID Hash32
	Index         uint32
}

// VotingProcedure is one voter's decision on one governance action,
// optionally annotated with a rationale anchor.
type VotingProcedure struct {
	Voter       Voter
	Action      GovActionID
	Vote        VoteChoice
	Anchor      *Anchor
}

// GovActionKind enumerates the Conway governance-action variants a
// proposal procedure may carry.
type GovActionKind uint8

const (
	GovActionParameterChange GovActionKind = iota
	GovActionHardForkInitiation
	GovActionTreasuryWithdrawals
	GovActionNoConfidence
	GovActionUpdateCommittee
	GovActionNewConstitution
	GovActionInfo
)

// ProposalProcedure is a single governance-action proposal attached to a
// transaction, reconstructed into a V3 script context's proposal-procedures
// field per §4.6.
type ProposalProcedure struct {
	Deposit      Coin
	RewardAccount Address
	Kind         GovActionKind
	Anchor       Anchor
}
