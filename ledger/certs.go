package ledger

// CertKind enumerates the certificate variants a transaction body may carry.
// This module models the subset that participates in script-context
// reconstruction and fee/balance accounting; pool retirement timing rules
// and MIR certificates (both deprecated in Conway) are out of scope.
type CertKind uint8

const (
	CertStakeRegistration CertKind = iota
	CertStakeDeregistration
	CertStakeDelegation
	CertPoolRegistration
	CertPoolRetirement
	CertRegisterDRep
	CertUnregisterDRep
	CertUpdateDRep
	CertVoteDelegation
)

// Cert is a single certificate. Which fields are meaningful depends on Kind.
type Cert struct {
	Kind       CertKind
	Credential Credential // stake or DRep credential, as applicable
	PoolKeyHash Hash28     // CertStakeDelegation, CertPoolRegistration/Retirement
	Deposit    Coin        // CertStakeRegistration, CertRegisterDRep (Conway's explicit deposit)
	Anchor     *Anchor     // CertRegisterDRep/UpdateDRep
}

// Anchor is a governance metadata anchor: a URL plus the hash of its
// content, used by DRep registration and governance-action proposals.
type Anchor struct {
	URL      string
	DataHash Hash32
}
