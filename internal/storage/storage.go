// Copyright 2023 Blink Labs Software
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

// Package storage provides a BadgerDB-backed UTxO cache: a local mirror of
// the UTxOs a provider has seen at each address, so repeated balancing
// runs (§4.5) don't need a live round-trip to re-fetch the same set.
package storage

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gouplc/internal/config"
	"github.com/blinklabs-io/gouplc/internal/logging"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

type Storage struct {
	db *badger.DB
}

var globalStorage = &Storage{}

func (s *Storage) Load() error {
	cfg := config.GetConfig()
	badgerOpts := badger.DefaultOptions(cfg.Storage.Directory).
		WithLogger(NewBadgerLogger()).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutUTxO records a UTxO's CBOR-encoded output under both its input
// reference and its owning address, so GetUTxOs can list every UTxO at an
// address without a secondary index scan.
func (s *Storage) PutUTxO(
	address string,
	txID string,
	outputIndex uint32,
	outputCBOR []byte,
) error {
	logger := logging.GetLogger()
	utxoID := fmt.Sprintf("%s.%d", txID, outputIndex)
	logger.Debugf("caching UTxO %s for address %s", utxoID, address)
	utxoKey := fmt.Sprintf("utxo_%s", utxoID)
	utxoAddressKey := fmt.Sprintf("%s_address", utxoKey)
	addressKey := fmt.Sprintf("address_%s", address)
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(utxoKey), outputCBOR); err != nil {
			return err
		}
		if err := txn.Set([]byte(utxoAddressKey), []byte(address)); err != nil {
			return err
		}
		var oldVal []byte
		addressItem, err := txn.Get([]byte(addressKey))
		if err != nil {
			if err != badger.ErrKeyNotFound {
				return err
			}
		} else {
			if err := addressItem.Value(func(val []byte) error {
				oldVal = append([]byte{}, val...)
				return nil
			}); err != nil {
				return err
			}
		}
		var newVal string
		if len(oldVal) == 0 {
			newVal = utxoID
		} else {
			newVal = fmt.Sprintf("%s,%s", oldVal, utxoID)
		}
		return txn.Set([]byte(addressKey), []byte(newVal))
	})
}

// RemoveUTxO evicts a spent UTxO from the cache.
func (s *Storage) RemoveUTxO(txID string, outputIndex uint32) error {
	logger := logging.GetLogger()
	utxoID := fmt.Sprintf("%s.%d", txID, outputIndex)
	utxoKey := fmt.Sprintf("utxo_%s", utxoID)
	utxoAddressKey := fmt.Sprintf("%s_address", utxoKey)
	return s.db.Update(func(txn *badger.Txn) error {
		utxoAddressItem, err := txn.Get([]byte(utxoAddressKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		logger.Debugf("evicting UTxO %s from cache", utxoID)
		return utxoAddressItem.Value(func(addressVal []byte) error {
			if err := txn.Delete([]byte(utxoKey)); err != nil {
				return fmt.Errorf("failed to delete UTxO key: %w", err)
			}
			addressKey := fmt.Sprintf("address_%s", addressVal)
			addressItem, err := txn.Get([]byte(addressKey))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					return nil
				}
				return fmt.Errorf("failed to look up UTxO address: %w", err)
			}
			if err := addressItem.Value(func(utxosVal []byte) error {
				var kept []string
				for _, item := range strings.Split(string(utxosVal), ",") {
					if item != utxoID {
						kept = append(kept, item)
					}
				}
				return txn.Set([]byte(addressKey), []byte(strings.Join(kept, ",")))
			}); err != nil {
				return err
			}
			return txn.Delete([]byte(utxoAddressKey))
		})
	})
}

// CachedUTxO is one entry returned by GetUTxOs: the parsed input reference
// alongside its opaque CBOR-encoded output.
type CachedUTxO struct {
	TxIDHex     string
	OutputIndex uint32
	OutputCBOR  []byte
}

// GetUTxOs returns every UTxO cached at address.
func (s *Storage) GetUTxOs(address string) ([]CachedUTxO, error) {
	addressKey := fmt.Sprintf("address_%s", address)
	var idxVal []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(addressKey))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			idxVal = append([]byte{}, v...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(idxVal) == 0 {
		return nil, nil
	}

	var ret []CachedUTxO
	for _, utxoID := range strings.Split(string(idxVal), ",") {
		txIDHex, index, err := utxoIDToRef(utxoID)
		if err != nil {
			return nil, err
		}
		utxoKey := fmt.Sprintf("utxo_%s", utxoID)
		err = s.db.View(func(txn *badger.Txn) error {
			item, err := txn.Get([]byte(utxoKey))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					return nil
				}
				return err
			}
			return item.Value(func(v []byte) error {
				ret = append(ret, CachedUTxO{
					TxIDHex:     txIDHex,
					OutputIndex: index,
					OutputCBOR:  append([]byte{}, v...),
				})
				return nil
			})
		})
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// utxoIDToRef splits a "txId.index" cache key back into its parts.
func utxoIDToRef(utxoID string) (txIDHex string, index uint32, err error) {
	parts := strings.SplitN(utxoID, ".", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("storage: malformed utxo id %q", utxoID)
	}
	if _, err := hex.DecodeString(parts[0]); err != nil {
		return "", 0, fmt.Errorf("storage: malformed utxo id %q: %w", utxoID, err)
	}
	var idx uint32
	if _, err := fmt.Sscanf(parts[1], "%d", &idx); err != nil {
		return "", 0, fmt.Errorf("storage: malformed utxo id %q: %w", utxoID, err)
	}
	return parts[0], idx, nil
}

func GetStorage() *Storage {
	return globalStorage
}

// BadgerLogger adapts the process logger to Badger's expected interface,
// which spells the warning-level method Warningf rather than zap's Warnf.
type BadgerLogger struct {
	*zap.SugaredLogger
}

func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{
		SugaredLogger: logging.GetLogger(),
	}
}

func (b *BadgerLogger) Warningf(msg string, args ...any) {
	b.SugaredLogger.Warnf(msg, args...)
}
