// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package common provides small ergonomic wrappers for describing a single
// native asset and its quantity, for callers that want to enumerate a
// ledger.Value one asset at a time rather than walk its nested maps.
package common

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gouplc/ledger"
)

// AssetClass represents a Cardano native asset identified by policy ID and
// asset name. ADA/lovelace is represented by empty policy ID and name.
type AssetClass struct {
	PolicyId []byte
	Name     []byte
}

// String returns a human-readable representation of the AssetClass
func (a AssetClass) String() string {
	return fmt.Sprintf(
		"AssetClass< policy_id = %s, name = %s >",
		hex.EncodeToString(a.PolicyId),
		hex.EncodeToString(a.Name),
	)
}

// IsLovelace returns true if the AssetClass represents ADA/lovelace
func (a AssetClass) IsLovelace() bool {
	return len(a.PolicyId) == 0 && len(a.Name) == 0
}

// PolicyIdHex returns the policy ID as a hex string
func (a AssetClass) PolicyIdHex() string {
	return hex.EncodeToString(a.PolicyId)
}

// NameHex returns the asset name as a hex string
func (a AssetClass) NameHex() string {
	return hex.EncodeToString(a.Name)
}

// Fingerprint returns a unique identifier for the asset.
// For lovelace, returns "lovelace".
// For native tokens, returns "policyId.assetName" in hex.
func (a AssetClass) Fingerprint() string {
	if a.IsLovelace() {
		return "lovelace"
	}
	return fmt.Sprintf("%s.%s", a.PolicyIdHex(), a.NameHex())
}

// NewAssetClass creates a new AssetClass from hex-encoded policy ID and name.
// Returns an error if the hex strings are invalid.
func NewAssetClass(policyIdHex, nameHex string) (AssetClass, error) {
	policyId, err := hex.DecodeString(policyIdHex)
	if err != nil {
		return AssetClass{}, fmt.Errorf(
			"invalid policy ID hex: %w",
			err,
		)
	}
	name, err := hex.DecodeString(nameHex)
	if err != nil {
		return AssetClass{}, fmt.Errorf("invalid name hex: %w", err)
	}
	return AssetClass{
		PolicyId: policyId,
		Name:     name,
	}, nil
}

// Lovelace returns an AssetClass representing ADA/lovelace
func Lovelace() AssetClass {
	return AssetClass{}
}

// toLedger converts the AssetClass to the ledger package's fixed-width
// policy ID / asset name representation used by ledger.Value.
func (a AssetClass) toLedger() (ledger.PolicyID, ledger.AssetName) {
	var policy ledger.PolicyID
	copy(policy[:], a.PolicyId)
	return policy, ledger.AssetName(a.Name)
}

// AssetAmount represents an amount of a specific asset
type AssetAmount struct {
	Class  AssetClass
	Amount int64
}

// IsAsset returns true if the AssetAmount's class matches the given AssetClass
func (a AssetAmount) IsAsset(other AssetClass) bool {
	return bytes.Equal(a.Class.PolicyId, other.PolicyId) &&
		bytes.Equal(a.Class.Name, other.Name)
}

// IsLovelace returns true if the AssetAmount represents ADA/lovelace
func (a AssetAmount) IsLovelace() bool {
	return a.Class.IsLovelace()
}

// String returns a human-readable representation of the AssetAmount
func (a AssetAmount) String() string {
	return fmt.Sprintf(
		"AssetAmount< class = %s, amount = %d >",
		a.Class.String(),
		a.Amount,
	)
}

// Enumerate flattens a ledger.Value into one AssetAmount per entry, with
// lovelace first followed by native assets in map iteration order.
func Enumerate(v ledger.Value) []AssetAmount {
	ret := []AssetAmount{{Class: Lovelace(), Amount: int64(v.Coin)}}
	for policy, assets := range v.Assets {
		policyBytes := append([]byte{}, policy[:]...)
		for name, qty := range assets {
			ret = append(ret, AssetAmount{
				Class:  AssetClass{PolicyId: policyBytes, Name: name.Bytes()},
				Amount: qty,
			})
		}
	}
	return ret
}

// QuantityIn returns the quantity of this AssetClass within v, 0 if absent.
func (a AssetClass) QuantityIn(v ledger.Value) int64 {
	if a.IsLovelace() {
		return int64(v.Coin)
	}
	policy, name := a.toLedger()
	return v.AssetQuantity(policy, name)
}
