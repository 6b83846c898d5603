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

	"github.com/blinklabs-io/gotweet/record"
	"github.com/urfave/cli/v3"
)

type SendCmd struct {
	flags   *Flags
	topic   string
	content string
	slug    bool
	json    bool
}

// NewSendCmd creates a new send command
func NewSendCmd(flags *Flags) *SendCmd {
	return &SendCmd{flags: flags}
}

// Register adds the send command to the application
func (cmd *SendCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "send",
		Usage:     "Create a record",
		UsageText: "gotweet send --content TEXT [--topic TOPIC] [--slug]",
		Description: `Creates a record authored by the configured keypair.

Topics are limited to 50 bytes and content to 280 bytes.

Example:
  gotweet send --topic dogs --content "Bruno is a brave Dog"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "topic",
				Aliases:     []string{"t"},
				Usage:       "record topic",
				Destination: &cmd.topic,
			},
			&cli.StringFlag{
				Name:        "content",
				Aliases:     []string{"m"},
				Usage:       "record content",
				Required:    true,
				Destination: &cmd.content,
			},
			&cli.BoolFlag{
				Name:        "slug",
				Usage:       "normalize the topic to a slug",
				Destination: &cmd.slug,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the created record as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SendCmd) run(ctx context.Context, c *cli.Command) error {
	topic := cmd.topic
	if cmd.slug {
		topic = record.Slug(topic)
	}
	client, closeFn, err := cmd.flags.openClient(true)
	if err != nil {
		return err
	}
	defer closeFn()

	rec, err := client.CreateRecord(ctx, topic, cmd.content)
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	loc, err := cmd.flags.Config.Location()
	if err != nil {
		return err
	}
	out := c.Root().Writer
	if cmd.json {
		return writeJSON(out, recordView(rec, loc))
	}
	_, _ = fmt.Fprintln(out, rec.Key())
	return nil
}
