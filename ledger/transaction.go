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
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
)

// Transaction is a signed create instruction
type Transaction struct {
	Author      common.PublicKey
	Instruction []byte
	Signature   []byte
}

// NewCreateTransaction serializes and signs a create request
func NewCreateTransaction(req record.CreateRequest, signer common.Keypair) (Transaction, error) {
	if signer.IsZero() {
		return Transaction{}, ErrNoSigner
	}
	instruction := req.InstructionData()
	return Transaction{
		Author:      signer.PublicKey(),
		Instruction: instruction,
		Signature:   signer.Sign(instruction),
	}, nil
}

// Verify checks the author's signature over the instruction
func (t Transaction) Verify() bool {
	return common.VerifySignature(t.Author, t.Instruction, t.Signature)
}
