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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blinklabs-io/gotweet"
	"github.com/blinklabs-io/gotweet/internal/config"
	"github.com/blinklabs-io/gotweet/ledger"
	"github.com/blinklabs-io/gotweet/ledger/bolt"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"github.com/blinklabs-io/gotweet/record"
)

type Flags struct {
	ConfigPath string
	DataDir    string
	Ledger     string
	Keypair    string
	LogLevel   string

	// Config and Logger are set up in the Before hook and available to all commands
	Config *config.Config
	Logger *slog.Logger
}

// openClient opens the configured ledger and returns a client for it. The signer
// is loaded only when withSigner is set. The returned func closes the ledger
func (f *Flags) openClient(withSigner bool) (*gotweet.Client, func() error, error) {
	cfg := f.Config
	programID, err := cfg.Program()
	if err != nil {
		return nil, nil, err
	}
	codec := record.NewCodec(record.WithDiscriminatorCheck(cfg.VerifyDiscriminator))
	opts := []gotweet.ClientOptionFunc{
		gotweet.WithLogger(f.Logger),
		gotweet.WithCodec(codec),
		gotweet.WithFetchConcurrency(cfg.FetchConcurrency),
	}
	if withSigner {
		signer, err := common.LoadKeypairFile(cfg.Keypair)
		if err != nil {
			return nil, nil, fmt.Errorf("load keypair (run 'gotweet keygen' to create one): %w", err)
		}
		opts = append(opts, gotweet.WithSigner(signer))
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Ledger), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create ledger directory: %w", err)
	}
	program := ledger.NewProgram(
		ledger.WithProgramID(programID),
		ledger.WithProgramCodec(codec),
		ledger.WithProgramLogger(f.Logger),
	)
	rpc, err := bolt.Open(
		cfg.Ledger,
		bolt.WithProgram(program),
		bolt.WithLogger(f.Logger),
	)
	if err != nil {
		return nil, nil, err
	}
	client, err := gotweet.New(append(opts, gotweet.WithLedger(rpc))...)
	if err != nil {
		_ = rpc.Close()
		return nil, nil, err
	}
	return client, rpc.Close, nil
}
