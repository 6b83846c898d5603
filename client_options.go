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

package gotweet

import (
	"log/slog"

	"github.com/blinklabs-io/gotweet/ledger"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
)

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithLedger specifies the ledger to read from and submit to. This option is required
func WithLedger(rpc ledger.RPC) ClientOptionFunc {
	return func(c *Client) {
		c.rpc = rpc
	}
}

// WithLogger specifies the logger to use. The default is slog.Default()
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCodec specifies the codec used to decode accounts and prepare creates. Filters
// are built from the codec's layout
func WithCodec(codec *record.Codec) ClientOptionFunc {
	return func(c *Client) {
		c.codec = codec
	}
}

// WithSigner specifies the keypair used to author new records
func WithSigner(signer common.Keypair) ClientOptionFunc {
	return func(c *Client) {
		c.signer = signer
	}
}

// WithFetchConcurrency specifies the maximum number of parallel fetches made by GetRecords
func WithFetchConcurrency(concurrency int) ClientOptionFunc {
	return func(c *Client) {
		c.fetchConcurrency = concurrency
	}
}
