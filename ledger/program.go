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

package ledger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/blinklabs-io/gotweet/layout"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
)

// Program applies the write rules of the tweet program. Local ledgers use it
// to validate and materialize create transactions
type Program struct {
	id     common.PublicKey
	codec  *record.Codec
	clock  func() time.Time
	random io.Reader
	logger *slog.Logger
}

// ProgramOptionFunc is a type that represents functions that modify the Program config
type ProgramOptionFunc func(*Program)

// WithProgramID specifies the program address recorded as the account owner
func WithProgramID(id common.PublicKey) ProgramOptionFunc {
	return func(p *Program) {
		p.id = id
	}
}

// WithProgramCodec specifies the codec used to build account data
func WithProgramCodec(codec *record.Codec) ProgramOptionFunc {
	return func(p *Program) {
		p.codec = codec
	}
}

// WithProgramClock specifies the source of record timestamps
func WithProgramClock(clock func() time.Time) ProgramOptionFunc {
	return func(p *Program) {
		p.clock = clock
	}
}

// WithProgramRandom specifies the entropy source for new account addresses.
// The default is crypto/rand
func WithProgramRandom(r io.Reader) ProgramOptionFunc {
	return func(p *Program) {
		p.random = r
	}
}

// WithProgramLogger specifies the logger to use
func WithProgramLogger(logger *slog.Logger) ProgramOptionFunc {
	return func(p *Program) {
		p.logger = logger
	}
}

// NewProgram returns a Program with the specified options
func NewProgram(opts ...ProgramOptionFunc) *Program {
	p := &Program{
		id:    DefaultProgramID,
		codec: record.NewCodec(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

func (p *Program) ID() common.PublicKey {
	return p.id
}

// AccountSize is the space allocated for every account
func (p *Program) AccountSize() int {
	return p.codec.Layout().MaxSize()
}

// Execute validates a create transaction and returns the new account
func (p *Program) Execute(tx Transaction) (Account, error) {
	if !tx.Verify() {
		return Account{}, ErrInvalidSignature
	}
	req, err := record.DecodeCreateInstruction(tx.Instruction)
	if err != nil {
		p.logger.Debug(
			"rejected instruction",
			"component", "program",
			"author", tx.Author.String(),
			"error", err.Error(),
		)
		return Account{}, errInstructionDidNotDeserialize
	}
	if err := p.validate(req); err != nil {
		return Account{}, err
	}
	// Each record lives at the address of a freshly generated keypair
	addressKey, err := common.GenerateKeypair(p.random)
	if err != nil {
		return Account{}, fmt.Errorf("allocate address: %w", err)
	}
	address := addressKey.PublicKey()
	if !address.IsOnCurve() {
		return Account{}, errors.New("allocated address is not a valid curve point")
	}
	rec := record.New(address, tx.Author, p.clock().Unix(), req.Topic, req.Content)
	encoded, err := p.codec.Encode(rec)
	if err != nil {
		return Account{}, err
	}
	data := make([]byte, p.AccountSize())
	copy(data, encoded)
	p.logger.Debug(
		"created account",
		"component", "program",
		"address", address.String(),
		"author", tx.Author.String(),
		"size", len(encoded),
	)
	return Account{Address: address, Data: data}, nil
}

func (p *Program) validate(req record.CreateRequest) error {
	d := p.codec.Layout()
	maxTopic, err := d.MaxWidth(layout.FieldTopic)
	if err != nil {
		return err
	}
	if len(req.Topic) > maxTopic {
		return errTopicTooLong
	}
	maxContent, err := d.MaxWidth(layout.FieldContent)
	if err != nil {
		return err
	}
	if len(req.Content) > maxContent {
		return errContentTooLong
	}
	return nil
}
