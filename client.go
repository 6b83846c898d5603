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

// Package gotweet implements a client for tweet records stored as fixed-layout
// accounts on a ledger.
//
// Records are listed with memcmp filters built from the record layout, decoded
// into immutable values, and created by submitting a signed instruction to the
// ledger. The layout, filter, and record packages can be used on their own, but
// this package is the main entry point into the library.
package gotweet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/blinklabs-io/gotweet/filter"
	"github.com/blinklabs-io/gotweet/ledger"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
	"golang.org/x/sync/errgroup"
)

const DefaultFetchConcurrency = 8

var ErrNoLedger = errors.New("no ledger configured")

// ErrNoSigner is returned by CreateRecord when the client has no signer
var ErrNoSigner = ledger.ErrNoSigner

// Client reads and writes tweet records through a ledger.RPC
type Client struct {
	rpc              ledger.RPC
	codec            *record.Codec
	filters          *filter.Builder
	logger           *slog.Logger
	signer           common.Keypair
	fetchConcurrency int
}

// New returns a new Client with the specified options. An error is returned if no
// ledger was provided
func New(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{
		fetchConcurrency: DefaultFetchConcurrency,
	}
	for _, option := range options {
		option(c)
	}
	if c.rpc == nil {
		return nil, ErrNoLedger
	}
	if c.codec == nil {
		c.codec = record.NewCodec()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.fetchConcurrency < 1 {
		c.fetchConcurrency = 1
	}
	c.filters = filter.NewBuilder(c.codec.Layout())
	return c, nil
}

// Ledger returns the ledger used by the client
func (c *Client) Ledger() ledger.RPC {
	return c.rpc
}

// Codec returns the codec used by the client
func (c *Client) Codec() *record.Codec {
	return c.codec
}

// Filters returns a filter builder for the client's record layout
func (c *Client) Filters() *filter.Builder {
	return c.filters
}

// Signer returns the keypair used to author new records, and whether one is set
func (c *Client) Signer() (common.Keypair, bool) {
	return c.signer, !c.signer.IsZero()
}

// ListRecords returns all records matching every filter. A filter on the record
// type is always added, so no filters lists every record
func (c *Client) ListRecords(ctx context.Context, filters ...filter.Filter) ([]record.Record, error) {
	all := make(filter.Filters, 0, len(filters)+1)
	all = append(all, c.filters.ByRecordType())
	all = append(all, filters...)
	accounts, err := c.rpc.List(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	ret := make([]record.Record, 0, len(accounts))
	for _, acct := range accounts {
		rec, err := c.codec.Decode(acct.Address, acct.Data)
		if err != nil {
			return nil, err
		}
		ret = append(ret, rec)
	}
	c.logger.Debug(
		"listed records",
		"component", "client",
		"filters", len(all),
		"records", len(ret),
	)
	return ret, nil
}

// ListRecordsByAuthor returns all records written by author
func (c *Client) ListRecordsByAuthor(ctx context.Context, author common.PublicKey) ([]record.Record, error) {
	f, err := c.filters.ByAuthor(author)
	if err != nil {
		return nil, err
	}
	return c.ListRecords(ctx, f)
}

// ListRecordsByTopic returns all records whose topic is exactly topic. Use
// ListRecords with a ByTopicPrefix filter for prefix matches
func (c *Client) ListRecordsByTopic(ctx context.Context, topic string) ([]record.Record, error) {
	f, err := c.filters.ByTopicPrefix(topic)
	if err != nil {
		return nil, err
	}
	recs, err := c.ListRecords(ctx, f)
	if err != nil {
		return nil, err
	}
	return c.ExactTopic(recs, topic), nil
}

// ExactTopic drops records whose topic is not exactly topic. A topic prefix
// filter also matches longer topics, so results listed with one are rechecked
// here. recs is filtered in place
func (c *Client) ExactTopic(recs []record.Record, topic string) []record.Record {
	return slices.DeleteFunc(recs, func(rec record.Record) bool {
		return rec.Topic() != topic
	})
}

// GetRecord fetches and decodes the record at address
func (c *Client) GetRecord(ctx context.Context, address common.PublicKey) (record.Record, error) {
	data, err := c.rpc.FetchOne(ctx, address)
	if err != nil {
		return record.Record{}, err
	}
	return c.codec.Decode(address, data)
}

// GetRecords fetches the records at the given addresses in parallel. The results
// are in the same order as the addresses. The first error cancels the remaining
// fetches and is returned
func (c *Client) GetRecords(ctx context.Context, addresses []common.PublicKey) ([]record.Record, error) {
	ret := make([]record.Record, len(addresses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.fetchConcurrency)
	for i, address := range addresses {
		g.Go(func() error {
			rec, err := c.GetRecord(gctx, address)
			if err != nil {
				return err
			}
			ret[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

// CreateRecord validates and submits a new record authored by the client's signer,
// and returns the stored record
func (c *Client) CreateRecord(ctx context.Context, topic string, content string) (record.Record, error) {
	if c.signer.IsZero() {
		return record.Record{}, ErrNoSigner
	}
	req, err := c.codec.PrepareCreate(topic, content)
	if err != nil {
		return record.Record{}, err
	}
	address, err := c.rpc.SubmitCreate(ctx, req, c.signer)
	if err != nil {
		return record.Record{}, fmt.Errorf("submit create: %w", err)
	}
	c.logger.Debug(
		"created record",
		"component", "client",
		"address", address.String(),
		"topic", req.Topic,
	)
	return c.GetRecord(ctx, address)
}
