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

// Package ledger defines the contract of the remote store that holds tweet
// accounts, along with the program rules used by the local implementations in
// the memory and bolt subpackages.
package ledger

import (
	"context"

	"github.com/blinklabs-io/gotweet/filter"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
)

// DefaultProgramID is the address of the program that owns tweet accounts
var DefaultProgramID = common.MustPublicKey("7wcobSpj8qrNtHycFaop7BxEWzbf81SRQUd8rsc6kNS5")

// Account is the raw data stored at an address
type Account struct {
	Address common.PublicKey
	Data    []byte
}

// RPC is the ledger interface consumed by the client
type RPC interface {
	// List returns every account whose data satisfies all filters
	List(ctx context.Context, filters filter.Filters) ([]Account, error)
	// FetchOne returns the data of a single account, or NotFoundError
	FetchOne(ctx context.Context, address common.PublicKey) ([]byte, error)
	// SubmitCreate creates a new record signed by signer and returns its address
	SubmitCreate(
		ctx context.Context,
		req record.CreateRequest,
		signer common.Keypair,
	) (common.PublicKey, error)
}
