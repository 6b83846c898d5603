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

// Package common provides the key types shared by the ledger and record packages.
//
// # Key Files by Purpose
//
//   - pubkey.go: PublicKey, the 32-byte address and author type, with its base58
//     text form and CBOR encoding
//   - keypair.go: ed25519 Keypair for signing create transactions, and the JSON
//     keypair file format used by the CLI
package common
