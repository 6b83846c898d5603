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
	"context"
	"fmt"

	"github.com/blinklabs-io/gotweet/filter"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
	"github.com/urfave/cli/v3"
)

type ListCmd struct {
	flags  *Flags
	author string
	topic  string
	exact  bool
	json   bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List records",
		UsageText: "gotweet list [--author ADDRESS] [--topic TOPIC] [--exact] [--json]",
		Description: `Lists records, optionally filtered by author and topic.

Topics match by prefix unless --exact is given, so --topic Bruno also lists
records with the topic "Bruno the brave Dog".`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "author",
				Aliases:     []string{"a"},
				Usage:       "only list records by this author",
				Destination: &cmd.author,
			},
			&cli.StringFlag{
				Name:        "topic",
				Aliases:     []string{"t"},
				Usage:       "only list records whose topic starts with this text",
				Destination: &cmd.topic,
			},
			&cli.BoolFlag{
				Name:        "exact",
				Usage:       "match the topic exactly",
				Destination: &cmd.exact,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print records as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	client, closeFn, err := cmd.flags.openClient(false)
	if err != nil {
		return err
	}
	defer closeFn()

	var filters []filter.Filter
	if cmd.author != "" {
		author, err := common.NewPublicKeyFromString(cmd.author)
		if err != nil {
			return fmt.Errorf("invalid author: %w", err)
		}
		f, err := client.Filters().ByAuthor(author)
		if err != nil {
			return err
		}
		filters = append(filters, f)
	}
	if cmd.topic != "" {
		f, err := client.Filters().ByTopicPrefix(cmd.topic)
		if err != nil {
			return err
		}
		filters = append(filters, f)
	}
	recs, err := client.ListRecords(ctx, filters...)
	if err != nil {
		return err
	}
	if cmd.exact && cmd.topic != "" {
		recs = client.ExactTopic(recs, cmd.topic)
	}

	loc, err := cmd.flags.Config.Location()
	if err != nil {
		return err
	}
	out := c.Root().Writer
	if cmd.json {
		views := make([]record.View, 0, len(recs))
		for _, rec := range recs {
			views = append(views, recordView(rec, loc))
		}
		return writeJSON(out, views)
	}
	if len(recs) == 0 {
		_, _ = fmt.Fprintln(out, "No records found")
		return nil
	}
	return writeTable(out, recs, loc)
}
