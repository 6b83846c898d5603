// Copyright 2026 Blink Labs Software
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

// Package bolt provides a ledger.RPC implementation backed by a bbolt file, for
// running the client against a persistent local ledger
package bolt

import (
	"bytes"
	"cmp"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/blinklabs-io/gotweet/cbor"
	"github.com/blinklabs-io/gotweet/filter"
	"github.com/blinklabs-io/gotweet/ledger"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
	"go.etcd.io/bbolt"
)

var (
	accountsBucket = []byte("accounts")
	metaBucket     = []byte("meta")
	slotKey        = []byte("slot")
)

const defaultOpenTimeout = 5 * time.Second

// accountEntry is the on-disk form of an account
type accountEntry struct {
	cbor.StructAsArray
	Slot  uint64
	Owner common.PublicKey
	Data  []byte
}

type Ledger struct {
	db          *bbolt.DB
	program     *ledger.Program
	logger      *slog.Logger
	openTimeout time.Duration
}

// OptionFunc is a type that represents functions that modify the Ledger config
type OptionFunc func(*Ledger)

// WithProgram specifies the program used to process creates
func WithProgram(program *ledger.Program) OptionFunc {
	return func(l *Ledger) {
		l.program = program
	}
}

// WithLogger specifies the logger to use
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithOpenTimeout specifies how long to wait for the file lock when opening
func WithOpenTimeout(timeout time.Duration) OptionFunc {
	return func(l *Ledger) {
		l.openTimeout = timeout
	}
}

// Open opens or creates the ledger file at path
func Open(path string, opts ...OptionFunc) (*Ledger, error) {
	l := &Ledger{
		openTimeout: defaultOpenTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	if l.program == nil {
		l.program = ledger.NewProgram(ledger.WithProgramLogger(l.logger))
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: l.openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{accountsBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize ledger %s: %w", path, err)
	}
	l.db = db
	l.logger.Debug("opened ledger", "component", "bolt", "path", path)
	return l, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) List(ctx context.Context, filters filter.Filters) ([]ledger.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type slotAccount struct {
		slot    uint64
		account ledger.Account
	}
	var matched []slotAccount
	err := l.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(accountsBucket).ForEach(func(k, v []byte) error {
			entry, err := decodeEntry(v)
			if err != nil {
				return fmt.Errorf("account %x: %w", k, err)
			}
			if entry.Owner != l.program.ID() || !filters.Match(entry.Data) {
				return nil
			}
			address, err := common.NewPublicKey(k)
			if err != nil {
				return err
			}
			matched = append(
				matched,
				slotAccount{
					slot:    entry.Slot,
					account: ledger.Account{Address: address, Data: entry.Data},
				},
			)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	// Order by write slot rather than by key
	slices.SortFunc(matched, func(a, b slotAccount) int {
		return cmp.Compare(a.slot, b.slot)
	})
	ret := make([]ledger.Account, 0, len(matched))
	for _, m := range matched {
		ret = append(ret, m.account)
	}
	l.logger.Debug(
		"listed accounts",
		"component", "bolt",
		"filters", len(filters),
		"matched", len(ret),
	)
	return ret, nil
}

func (l *Ledger) FetchOne(ctx context.Context, address common.PublicKey) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ret []byte
	err := l.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(accountsBucket).Get(address[:])
		if v == nil {
			return ledger.NotFoundError{Address: address}
		}
		entry, err := decodeEntry(v)
		if err != nil {
			return fmt.Errorf("account %s: %w", address, err)
		}
		ret = entry.Data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (l *Ledger) SubmitCreate(
	ctx context.Context,
	req record.CreateRequest,
	signer common.Keypair,
) (common.PublicKey, error) {
	if err := ctx.Err(); err != nil {
		return common.PublicKey{}, err
	}
	tx, err := ledger.NewCreateTransaction(req, signer)
	if err != nil {
		return common.PublicKey{}, err
	}
	acct, err := l.program.Execute(tx)
	if err != nil {
		return common.PublicKey{}, err
	}
	if err := l.Put(acct.Address, acct.Data); err != nil {
		return common.PublicKey{}, err
	}
	return acct.Address, nil
}

// Put stores raw account data owned by the ledger's program at an address
func (l *Ledger) Put(address common.PublicKey, data []byte) error {
	return l.db.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(metaBucket)
		var slot uint64
		if v := meta.Get(slotKey); v != nil {
			slot = binary.BigEndian.Uint64(v)
		}
		slot++
		if err := meta.Put(slotKey, binary.BigEndian.AppendUint64(nil, slot)); err != nil {
			return err
		}
		entryCbor, err := cbor.Encode(
			&accountEntry{
				Slot:  slot,
				Owner: l.program.ID(),
				Data:  data,
			},
		)
		if err != nil {
			return err
		}
		return tx.Bucket(accountsBucket).Put(address[:], entryCbor)
	})
}

// Slot returns the number of writes applied to the ledger
func (l *Ledger) Slot() (uint64, error) {
	var ret uint64
	err := l.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(metaBucket).Get(slotKey); v != nil {
			ret = binary.BigEndian.Uint64(v)
		}
		return nil
	})
	return ret, err
}

func decodeEntry(data []byte) (accountEntry, error) {
	var entry accountEntry
	if cbor.MajorType(data) != cbor.CborTypeArray {
		return entry, errors.New("stored entry is not a CBOR array")
	}
	if _, err := cbor.Decode(data, &entry); err != nil {
		return entry, err
	}
	// Values returned by bbolt are only valid for the life of the transaction
	entry.Data = bytes.Clone(entry.Data)
	return entry, nil
}
