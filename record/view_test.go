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

package record_test

import (
	"testing"
	"time"

	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
	"github.com/stretchr/testify/assert"
)

func TestAuthorDisplay(t *testing.T) {
	author := common.MustPublicKey("9xQeWvG816bUx9EPjHmaT23yvVM2ZWBpMKvQpNaLv9E3")
	rec := record.New(testAddress, author, 0, "", "")
	assert.Equal(t, "9xQe..v9E3", rec.AuthorDisplay())
}

func TestShortenAddress(t *testing.T) {
	testDefs := map[string]string{
		"":          "",
		"abc":       "abc",
		"abcdefg":   "abcdefg",
		"abcdefgh":  "abcd..efgh",
		"abcdefghi": "abcd..fghi",
		"ÄÖÜßäöüéè": "ÄÖÜß..öüéè",
	}
	for input, expected := range testDefs {
		assert.Equal(t, expected, record.ShortenAddress(input), input)
	}
}

func TestKey(t *testing.T) {
	rec := record.New(testAddress, testAuthor, 0, "", "")
	assert.Equal(t, testAddress.String(), rec.Key())
}

func TestCreatedAt(t *testing.T) {
	rec := record.New(testAddress, testAuthor, 1_600_000_000, "", "")
	assert.Equal(t, "Sep 13, 2020 12:26 PM", rec.CreatedAt())
	// Repeated calls render the same value
	assert.Equal(t, rec.CreatedAt(), rec.CreatedAt())

	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "Sep 13, 2020 2:26 PM", rec.CreatedAtIn(loc))
	assert.Equal(t, rec.CreatedAt(), rec.CreatedAtIn(nil))
}

func TestCreatedAgo(t *testing.T) {
	rec := record.New(testAddress, testAuthor, 1_600_000_000, "", "")
	created := time.Unix(1_600_000_000, 0)
	testDefs := []struct {
		now      time.Time
		expected string
	}{
		{now: created, expected: "now"},
		{now: created.Add(3 * time.Minute), expected: "3 minutes ago"},
		{now: created.Add(5 * time.Hour), expected: "5 hours ago"},
		{now: created.Add(-3 * 24 * time.Hour), expected: "3 days from now"},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, rec.CreatedAgoFrom(testDef.now))
	}
	assert.Contains(t, rec.CreatedAgo(), "ago")
}

func TestView(t *testing.T) {
	rec := record.New(testAddress, testAuthor, 1_600_000_000, "dogs", "Bruno is a brave Dog")
	view := rec.View()
	assert.Equal(t, rec.Key(), view.Key)
	assert.Equal(t, rec.AuthorDisplay(), view.AuthorDisplay)
	assert.Equal(t, "1600000000", view.Timestamp)
	assert.Equal(t, "dogs", view.Topic)
	assert.Equal(t, "Bruno is a brave Dog", view.Content)
	assert.Equal(t, "Sep 13, 2020 12:26 PM", view.CreatedAt)
	assert.NotEmpty(t, view.CreatedAgo)
}

func TestRecordWithAddress(t *testing.T) {
	rec := record.New(testAddress, testAuthor, 7, "a", "b")
	moved := rec.WithAddress(testAuthor)
	assert.Equal(t, testAddress, rec.Address())
	assert.Equal(t, testAuthor, moved.Address())
	assert.Equal(t, rec.Topic(), moved.Topic())
}

func TestZeroRecordTime(t *testing.T) {
	var rec record.Record
	assert.Equal(t, int64(0), rec.UnixTimestamp())
	assert.Equal(t, time.Unix(0, 0), rec.Time())
}

func TestSlug(t *testing.T) {
	testDefs := map[string]string{
		"Solana is AWESOME":        "solana-is-awesome",
		"  Bruno   the brave Dog ": "-bruno-the-brave-dog-",
		"rust -- go":               "rust-go",
		"Café!":                    "caf",
		"":                         "",
	}
	for input, expected := range testDefs {
		assert.Equal(t, expected, record.Slug(input), input)
	}
}
