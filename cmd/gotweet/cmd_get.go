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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
	"github.com/urfave/cli/v3"
)

type GetCmd struct {
	flags *Flags
	json  bool
}

// NewGetCmd creates a new get command
func NewGetCmd(flags *Flags) *GetCmd {
	return &GetCmd{flags: flags}
}

// Register adds the get command to the application
func (cmd *GetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "get",
		Usage:       "Show one or more records",
		UsageText:   "gotweet get ADDRESS... [--json]",
		Description: "Fetches the records at the given addresses.",
		Flags: []cli.Flag{
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

func (cmd *GetCmd) run(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return errors.New("address required\n\nUsage: gotweet get ADDRESS...")
	}
	addresses := make([]common.PublicKey, 0, len(args))
	for _, arg := range args {
		address, err := common.NewPublicKeyFromString(arg)
		if err != nil {
			return fmt.Errorf("invalid address %q: %w", arg, err)
		}
		addresses = append(addresses, address)
	}

	client, closeFn, err := cmd.flags.openClient(false)
	if err != nil {
		return err
	}
	defer closeFn()

	recs, err := client.GetRecords(ctx, addresses)
	if err != nil {
		return err
	}
	loc, err := cmd.flags.Config.Location()
	if err != nil {
		return err
	}
	out := c.Root().Writer
	if cmd.json {
		if len(recs) == 1 {
			return writeJSON(out, recordView(recs[0], loc))
		}
		views := make([]record.View, 0, len(recs))
		for _, rec := range recs {
			views = append(views, recordView(rec, loc))
		}
		return writeJSON(out, views)
	}
	return writeTable(out, recs, loc)
}
