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

// Package filter builds byte-offset equality filters that a ledger can
// evaluate against raw account data without decoding it.
//
// A Filter matches when the account bytes at Offset equal Bytes. A Filters
// value is the logical AND of its members; there is no OR or NOT. Filters on a
// variable-length field only ever match a prefix of that field, since the
// ledger compares bytes and never looks at the length prefix.
package filter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gotweet/layout"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// Filter is a single (offset, bytes) equality check
type Filter struct {
	Offset int
	Bytes  []byte
}

// Filters is a set of filters combined with AND
type Filters []Filter

// None returns the empty filter set, which matches every record
func None() Filters {
	return Filters{}
}

// And concatenates filter sets
func And(sets ...Filters) Filters {
	ret := Filters{}
	for _, set := range sets {
		ret = append(ret, set...)
	}
	return ret
}

// Match reports whether data holds f.Bytes at f.Offset
func (f Filter) Match(data []byte) bool {
	if f.Offset < 0 || f.Offset > len(data) {
		return false
	}
	if len(data)-f.Offset < len(f.Bytes) {
		return false
	}
	return bytes.Equal(data[f.Offset:f.Offset+len(f.Bytes)], f.Bytes)
}

// Match reports whether every filter matches data
func (fs Filters) Match(data []byte) bool {
	for _, f := range fs {
		if !f.Match(data) {
			return false
		}
	}
	return true
}

func (f Filter) String() string {
	return fmt.Sprintf("memcmp(offset=%d, bytes=%s)", f.Offset, base58.Encode(f.Bytes))
}

type memcmpJson struct {
	Offset int    `json:"offset"`
	Bytes  string `json:"bytes"`
}

type filterJson struct {
	Memcmp memcmpJson `json:"memcmp"`
}

// MarshalJSON returns the RPC wire form of the filter, with base58 bytes
func (f Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		filterJson{
			Memcmp: memcmpJson{
				Offset: f.Offset,
				Bytes:  base58.Encode(f.Bytes),
			},
		},
	)
}

func (f *Filter) UnmarshalJSON(data []byte) error {
	var tmp filterJson
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	decoded := base58.Decode(tmp.Memcmp.Bytes)
	if len(decoded) == 0 && tmp.Memcmp.Bytes != "" {
		return fmt.Errorf("invalid base58 filter bytes: %q", tmp.Memcmp.Bytes)
	}
	f.Offset = tmp.Memcmp.Offset
	f.Bytes = decoded
	return nil
}

// Builder translates predicates on named fields into filters, using a layout
// to compute offsets
type Builder struct {
	layout *layout.Descriptor
}

func NewBuilder(d *layout.Descriptor) *Builder {
	return &Builder{layout: d}
}

func (b *Builder) Layout() *layout.Descriptor {
	return b.layout
}

// ByRecordType matches the layout's discriminator
func (b *Builder) ByRecordType() Filter {
	disc := b.layout.Discriminator()
	return Filter{
		Offset: 0,
		Bytes:  bytes.Clone(disc[:]),
	}
}

// ByAuthor matches records created by author
func (b *Builder) ByAuthor(author common.PublicKey) (Filter, error) {
	offset, err := b.layout.PayloadOffset(layout.FieldAuthor)
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		Offset: offset,
		Bytes:  author.Bytes(),
	}, nil
}

// ByTopicPrefix matches records whose topic starts with topic. A record whose
// topic is longer but shares the prefix also matches
func (b *Builder) ByTopicPrefix(topic string) (Filter, error) {
	return b.byPrefix(layout.FieldTopic, topic)
}

func (b *Builder) byPrefix(field string, value string) (Filter, error) {
	offset, err := b.layout.PayloadOffset(field)
	if err != nil {
		return Filter{}, err
	}
	maxWidth, err := b.layout.MaxWidth(field)
	if err != nil {
		return Filter{}, err
	}
	if len(value) > maxWidth {
		return Filter{}, FilterTooLongError{
			Field:  field,
			Length: len(value),
			Max:    maxWidth,
		}
	}
	return Filter{
		Offset: offset,
		Bytes:  []byte(value),
	}, nil
}
