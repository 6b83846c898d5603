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
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gotweet/internal/config"
	"github.com/urfave/cli/v3"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, short)
}

func main() {
	app := newApp(&Flags{}, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(flags *Flags, stdout io.Writer, stderr io.Writer) *cli.Command {
	app := &cli.Command{
		Name:      "gotweet",
		Usage:     "Read and write tweet records on a ledger",
		UsageText: "gotweet [global options] command [command options]",
		Version:   build(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("GOTWEET_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "directory for the default ledger and keypair files",
				Sources:     cli.EnvVars("GOTWEET_DATA_DIR"),
				Value:       config.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "ledger",
				Usage:       "path to the ledger file (overrides config)",
				Sources:     cli.EnvVars("GOTWEET_LEDGER"),
				Destination: &flags.Ledger,
			},
			&cli.StringFlag{
				Name:        "keypair",
				Usage:       "path to the signer keypair file (overrides config)",
				Sources:     cli.EnvVars("GOTWEET_KEYPAIR"),
				Destination: &flags.Keypair,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("GOTWEET_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Ledger != "" {
				cfg.Ledger = flags.Ledger
			}
			if flags.Keypair != "" {
				cfg.Keypair = flags.Keypair
			}
			if flags.LogLevel != "" {
				cfg.LogLevel = flags.LogLevel
			}
			level, err := cfg.Level()
			if err != nil {
				return ctx, err
			}
			flags.Config = cfg
			flags.Logger = slog.New(
				slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
			)
			return ctx, nil
		},
	}

	app = NewKeygenCmd(flags).Register(app)
	app = NewSendCmd(flags).Register(app)
	app = NewListCmd(flags).Register(app)
	app = NewGetCmd(flags).Register(app)

	return app
}
