package ledger

import "github.com/blinklabs-io/gouroboros/cbor"

// MarshalCBOR encodes a TransactionBody as the Conway CDDL's keyed map,
// omitting every optional field that is absent. Field numbering follows the
// published transaction_body CDDL. VotingProcedures and ProposalProcedures
// are not encoded (keys 19 and 20 are never written), so neither the body
// bytes nor the transaction id cover them.
func (b TransactionBody) MarshalCBOR() ([]byte, error) {
	var fields []cborField

	inputs := b.SortedInputs()
	inputBytes := make([][]byte, len(inputs))
	for i, in := range inputs {
		enc, err := cbor.Encode(&in)
		if err != nil {
			return nil, err
		}
		inputBytes[i] = enc
	}
	fields = append(fields, rawField(0, encodeDefiniteArray(inputBytes)))

	outputBytes := make([][]byte, len(b.Outputs))
	for i, out := range b.Outputs {
		enc, err := cbor.Encode(&out)
		if err != nil {
			return nil, err
		}
		outputBytes[i] = enc
	}
	fields = append(fields, rawField(1, encodeDefiniteArray(outputBytes)))

	feeField, err := field(2, uint64(b.Fee))
	if err != nil {
		return nil, err
	}
	fields = append(fields, feeField)

	if b.ValidityInterval.InvalidAfter != nil {
		f, err := field(3, *b.ValidityInterval.InvalidAfter)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if len(b.Certificates) > 0 {
		certBytes := make([][]byte, len(b.Certificates))
		for i, c := range b.Certificates {
			enc, err := encodeCert(c)
			if err != nil {
				return nil, err
			}
			certBytes[i] = enc
		}
		fields = append(fields, rawField(4, encodeDefiniteArray(certBytes)))
	}

	if len(b.Withdrawals) > 0 {
		// Withdrawals key on reward-account bytes, not a small integer;
		// encode directly rather than through cborField/encodeCanonicalMap.
		out := encodeMapHeader(uint64(len(b.Withdrawals)))
		for _, w := range b.Withdrawals {
			acctField, err := cbor.Encode(w.RewardAccount.Bytes())
			if err != nil {
				return nil, err
			}
			amtField, err := cbor.Encode(uint64(w.Amount))
			if err != nil {
				return nil, err
			}
			out = append(out, acctField...)
			out = append(out, amtField...)
		}
		fields = append(fields, rawField(5, out))
	}

	if b.AuxiliaryDataHash != nil {
		f, err := field(7, b.AuxiliaryDataHash[:])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if b.ValidityInterval.InvalidBefore != nil {
		f, err := field(8, *b.ValidityInterval.InvalidBefore)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if !b.Mint.IsZero() {
		maBytes, err := encodeMultiAsset(b.Mint.Assets)
		if err != nil {
			return nil, err
		}
		fields = append(fields, rawField(9, maBytes))
	}

	if b.ScriptIntegrityHash != nil {
		f, err := field(11, b.ScriptIntegrityHash[:])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if len(b.CollateralInputs) > 0 {
		colBytes := make([][]byte, len(b.CollateralInputs))
		for i, in := range b.CollateralInputs {
			enc, err := cbor.Encode(&in)
			if err != nil {
				return nil, err
			}
			colBytes[i] = enc
		}
		fields = append(fields, rawField(13, encodeDefiniteArray(colBytes)))
	}

	if len(b.RequiredSigners) > 0 {
		sigBytes := make([][]byte, len(b.RequiredSigners))
		for i, h := range b.RequiredSigners {
			enc, err := cbor.Encode(h[:])
			if err != nil {
				return nil, err
			}
			sigBytes[i] = enc
		}
		fields = append(fields, rawField(14, encodeDefiniteArray(sigBytes)))
	}

	if b.NetworkID != nil {
		f, err := field(15, uint64(*b.NetworkID))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if b.CollateralReturn != nil {
		enc, err := cbor.Encode(b.CollateralReturn)
		if err != nil {
			return nil, err
		}
		fields = append(fields, rawField(16, enc))
	}

	if b.TotalCollateral != nil {
		f, err := field(17, uint64(*b.TotalCollateral))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if len(b.ReferenceInputs) > 0 {
		refBytes := make([][]byte, len(b.ReferenceInputs))
		for i, in := range b.ReferenceInputs {
			enc, err := cbor.Encode(&in)
			if err != nil {
				return nil, err
			}
			refBytes[i] = enc
		}
		fields = append(fields, rawField(18, encodeDefiniteArray(refBytes)))
	}

	if b.CurrentTreasury != nil {
		f, err := field(21, uint64(*b.CurrentTreasury))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if b.TreasuryDonation != nil {
		f, err := field(22, uint64(*b.TreasuryDonation))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return encodeCanonicalMap(fields)
}

// encodeCert renders a certificate as a generic [kind, ...fields] array.
// The full per-kind CDDL shapes (pool registration's pledge/margin/owners,
// DRep anchors, and so on) are not reproduced field-for-field; this module
// only needs certificates to influence script-context reconstruction and
// fee accounting, not to round-trip byte-for-byte against a real node.
func encodeCert(c Cert) ([]byte, error) {
	kindField, err := cbor.Encode(uint64(c.Kind))
	if err != nil {
		return nil, err
	}
	credField, err := cbor.Encode(c.Credential.Hash[:])
	if err != nil {
		return nil, err
	}
	items := [][]byte{kindField, credField}
	if c.PoolKeyHash != (Hash28{}) {
		poolField, err := cbor.Encode(c.PoolKeyHash[:])
		if err != nil {
			return nil, err
		}
		items = append(items, poolField)
	}
	return encodeDefiniteArray(items), nil
}

// Hash returns the Blake2b-256 transaction id: the hash of this body's
// exact CBOR bytes (§3.4's defining invariant — the id commits to nothing
// outside the body, so witness changes never change the id).
func (b TransactionBody) Hash() (Hash32, error) {
	encoded, err := b.MarshalCBOR()
	if err != nil {
		return Hash32{}, err
	}
	return Blake2b256Hash(encoded), nil
}
