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
	"os"

	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/urfave/cli/v3"
)

type KeygenCmd struct {
	flags *Flags
	out   string
	force bool
}

// NewKeygenCmd creates a new keygen command
func NewKeygenCmd(flags *Flags) *KeygenCmd {
	return &KeygenCmd{flags: flags}
}

// Register adds the keygen command to the application
func (cmd *KeygenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "keygen",
		Usage:       "Generate a signer keypair",
		UsageText:   "gotweet keygen [--out path] [--force]",
		Description: "Writes a new keypair file and prints its public key.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "keypair file to write (defaults to the configured keypair)",
				Destination: &cmd.out,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing keypair file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *KeygenCmd) run(ctx context.Context, c *cli.Command) error {
	path := cmd.out
	if path == "" {
		path = cmd.flags.Config.Keypair
	}
	if !cmd.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("keypair file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	kp, err := common.GenerateKeypair(nil)
	if err != nil {
		return err
	}
	if err := common.SaveKeypairFile(path, kp); err != nil {
		return err
	}
	cmd.flags.Logger.Debug("wrote keypair", "component", "cli", "path", path)
	_, _ = fmt.Fprintln(c.Root().Writer, kp.PublicKey().String())
	return nil
}
