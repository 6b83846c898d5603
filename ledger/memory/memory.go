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

// Package memory provides a ledger.RPC implementation that keeps accounts in
// memory
package memory

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"github.com/blinklabs-io/gotweet/filter"
	"github.com/blinklabs-io/gotweet/ledger"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
)

type Ledger struct {
	mu       sync.RWMutex
	program  *ledger.Program
	logger   *slog.Logger
	accounts map[common.PublicKey][]byte
	// Insertion order, used for List results
	order []common.PublicKey
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

// New returns an empty Ledger
func New(opts ...OptionFunc) *Ledger {
	l := &Ledger{
		accounts: make(map[common.PublicKey][]byte),
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
	return l
}

func (l *Ledger) List(ctx context.Context, filters filter.Filters) ([]ledger.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	ret := []ledger.Account{}
	for _, address := range l.order {
		data := l.accounts[address]
		if !filters.Match(data) {
			continue
		}
		ret = append(
			ret,
			ledger.Account{
				Address: address,
				Data:    bytes.Clone(data),
			},
		)
	}
	l.logger.Debug(
		"listed accounts",
		"component", "memory",
		"filters", len(filters),
		"matched", len(ret),
	)
	return ret, nil
}

func (l *Ledger) FetchOne(ctx context.Context, address common.PublicKey) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	data, ok := l.accounts[address]
	if !ok {
		return nil, ledger.NotFoundError{Address: address}
	}
	return bytes.Clone(data), nil
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
	l.Put(acct.Address, acct.Data)
	return acct.Address, nil
}

// Put stores raw account data at an address, replacing any existing data
func (l *Ledger) Put(address common.PublicKey, data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[address]; !ok {
		l.order = append(l.order, address)
	}
	l.accounts[address] = bytes.Clone(data)
}

// Len returns the number of stored accounts
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}
