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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/blinklabs-io/gotweet/record"
)

// recordView returns the view of rec with the creation time rendered in loc
func recordView(rec record.Record, loc *time.Location) record.View {
	v := rec.View()
	v.CreatedAt = rec.CreatedAtIn(loc)
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, recs []record.Record, loc *time.Location) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ADDRESS\tAUTHOR\tTOPIC\tCREATED\tCONTENT")
	for _, rec := range recs {
		topic := rec.Topic()
		if topic != "" {
			topic = "#" + topic
		}
		_, _ = fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\n",
			rec.Key(),
			rec.AuthorDisplay(),
			topic,
			rec.CreatedAtIn(loc),
			strings.ReplaceAll(rec.Content(), "\n", " "),
		)
	}
	return tw.Flush()
}
