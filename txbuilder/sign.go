package txbuilder

import "github.com/blinklabs-io/gouplc/ledger"

// Signer produces a Cardano extended-Ed25519 signature over message (the
// transaction ID) along with the verification key it signed under. The
// wallet package's key-derivation output satisfies this interface without
// txbuilder needing to import it.
type Signer interface {
	Sign(message []byte) (vkey [32]byte, signature [64]byte, err error)
}

// AttachSignatures computes tx's ID and appends one VKeyWitness per signer.
// Call this after Build has produced a fee-balanced, integrity-hashed
// transaction (§4.5 step 8).
func AttachSignatures(tx ledger.Transaction, signers []Signer) (ledger.Transaction, error) {
	txID, err := tx.ID()
	if err != nil {
		return ledger.Transaction{}, err
	}

	for _, s := range signers {
		vkey, sig, err := s.Sign(txID.Bytes())
		if err != nil {
			return ledger.Transaction{}, err
		}
		tx.WitnessSet.VKeyWitnesses = append(tx.WitnessSet.VKeyWitnesses, ledger.VKeyWitness{
			VKey:      vkey,
			Signature: sig,
		})
	}
	return tx, nil
}
