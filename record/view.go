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
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jinzhu/copier"
)

// CreatedAtFormat renders dates like "Sep 13, 2020 12:26 PM"
const CreatedAtFormat = "Jan 2, 2006 3:04 PM"

const shortenedAddressEdge = 4

// View holds the display fields of a record. All values are derived on
// construction and are not kept in sync with the record
type View struct {
	Key           string `json:"key"`
	AuthorDisplay string `json:"author_display"`
	Timestamp     string `json:"timestamp"`
	Topic         string `json:"topic"`
	Content       string `json:"content"`
	CreatedAt     string `json:"created_at"`
	CreatedAgo    string `json:"created_ago"`
}

// Key returns the canonical string form of the record address
func (r Record) Key() string {
	return r.address.String()
}

// AuthorDisplay returns a shortened form of the author key
func (r Record) AuthorDisplay() string {
	return ShortenAddress(r.author.String())
}

// CreatedAt returns the creation time formatted in UTC
func (r Record) CreatedAt() string {
	return r.CreatedAtIn(time.UTC)
}

// CreatedAtIn returns the creation time formatted in loc
func (r Record) CreatedAtIn(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return r.Time().In(loc).Format(CreatedAtFormat)
}

// CreatedAgo returns the creation time relative to now, such as "3 minutes ago"
func (r Record) CreatedAgo() string {
	return humanize.Time(r.Time())
}

// CreatedAgoFrom returns the creation time relative to now
func (r Record) CreatedAgoFrom(now time.Time) string {
	return humanize.RelTime(r.Time(), now, "ago", "from now")
}

// View returns the display fields of the record
func (r Record) View() View {
	var v View
	// View fields are filled from the accessor methods of the same name
	if err := copier.CopyWithOption(&v, &r, copier.Option{CaseSensitive: true}); err != nil {
		// Only reachable with mismatched types, which View does not have
		panic("unexpected error building record view: " + err.Error())
	}
	return v
}

// ShortenAddress keeps the first and last 4 characters of an address joined by
// "..". Strings too short to shorten are returned unchanged
func ShortenAddress(s string) string {
	runes := []rune(s)
	if len(runes) < 2*shortenedAddressEdge {
		return s
	}
	return string(runes[:shortenedAddressEdge]) + ".." + string(runes[len(runes)-shortenedAddressEdge:])
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// Slug normalizes text for use as a topic, e.g. "Solana is AWESOME" becomes
// "solana-is-awesome"
func Slug(text string) string {
	ret := strings.ToLower(text)
	ret = slugInvalidChars.ReplaceAllString(ret, "")
	ret = slugWhitespace.ReplaceAllString(ret, "-")
	return slugDashes.ReplaceAllString(ret, "-")
}
