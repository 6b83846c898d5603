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

package record

import (
	"strconv"
	"time"

	"github.com/blinklabs-io/gotweet/ledger/common"
)

// Record is a decoded tweet account. It is a value type: accessors never
// expose internal state for modification, and a changed record is a new value
type Record struct {
	address common.PublicKey
	author  common.PublicKey
	// Decimal seconds since the epoch
	timestamp string
	topic     string
	content   string
}

// New returns a Record with the given values
func New(
	address common.PublicKey,
	author common.PublicKey,
	timestamp int64,
	topic string,
	content string,
) Record {
	return Record{
		address:   address,
		author:    author,
		timestamp: strconv.FormatInt(timestamp, 10),
		topic:     topic,
		content:   content,
	}
}

func (r Record) Address() common.PublicKey {
	return r.address
}

func (r Record) Author() common.PublicKey {
	return r.author
}

// Timestamp returns the creation time in seconds since the epoch, as decimal text
func (r Record) Timestamp() string {
	return r.timestamp
}

func (r Record) Topic() string {
	return r.topic
}

func (r Record) Content() string {
	return r.content
}

// UnixTimestamp returns the creation time in seconds since the epoch
func (r Record) UnixTimestamp() int64 {
	// The timestamp is always produced by strconv.FormatInt, so this can only
	// fail for the zero Record
	ts, err := strconv.ParseInt(r.timestamp, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}

// Time returns the creation time
func (r Record) Time() time.Time {
	return time.Unix(r.UnixTimestamp(), 0)
}

// WithAddress returns a copy of the record stored at a different address
func (r Record) WithAddress(address common.PublicKey) Record {
	r.address = address
	return r
}
