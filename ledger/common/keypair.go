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

package common

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ed25519"
)

const (
	KeypairSeedSize   = ed25519.SeedSize
	KeypairSecretSize = ed25519.PrivateKeySize
	SignatureSize     = ed25519.SignatureSize
)

// Keypair is an ed25519 signer
type Keypair struct {
	privateKey ed25519.PrivateKey
}

// GenerateKeypair creates a new random keypair. A nil reader uses crypto/rand
func GenerateKeypair(r io.Reader) (Keypair, error) {
	if r == nil {
		r = rand.Reader
	}
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{privateKey: priv}, nil
}

// NewKeypairFromSeed derives a keypair from a 32-byte seed
func NewKeypairFromSeed(seed []byte) (Keypair, error) {
	if len(seed) != KeypairSeedSize {
		return Keypair{}, fmt.Errorf("invalid keypair seed length: %d", len(seed))
	}
	return Keypair{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// NewKeypairFromSecret loads a 64-byte secret key (seed followed by public key)
func NewKeypairFromSecret(secret []byte) (Keypair, error) {
	if len(secret) != KeypairSecretSize {
		return Keypair{}, fmt.Errorf("invalid keypair secret length: %d", len(secret))
	}
	kp, err := NewKeypairFromSeed(secret[:KeypairSeedSize])
	if err != nil {
		return Keypair{}, err
	}
	if !bytes.Equal(kp.privateKey[KeypairSeedSize:], secret[KeypairSeedSize:]) {
		return Keypair{}, errors.New("keypair public key does not match seed")
	}
	return kp, nil
}

func (k Keypair) IsZero() bool {
	return len(k.privateKey) == 0
}

func (k Keypair) PublicKey() PublicKey {
	var p PublicKey
	if k.IsZero() {
		return p
	}
	copy(p[:], k.privateKey[KeypairSeedSize:])
	return p
}

// Secret returns a copy of the 64-byte secret key
func (k Keypair) Secret() []byte {
	return bytes.Clone(k.privateKey)
}

func (k Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(k.privateKey, message)
}

// VerifySignature checks an ed25519 signature made by the given key
func VerifySignature(key PublicKey, message []byte, signature []byte) bool {
	if len(signature) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(key[:]), message, signature)
}

// LoadKeypairFile reads a keypair stored as a JSON array of the 64 secret key
// bytes, the format used by the ledger's command line wallet
func LoadKeypairFile(path string) (Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keypair{}, fmt.Errorf("read keypair file: %w", err)
	}
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return Keypair{}, fmt.Errorf("parse keypair file %s: %w", path, err)
	}
	secret := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return Keypair{}, fmt.Errorf("keypair file %s: byte %d out of range: %d", path, i, v)
		}
		secret[i] = byte(v)
	}
	return NewKeypairFromSecret(secret)
}

// SaveKeypairFile writes a keypair in the format read by LoadKeypairFile
func SaveKeypairFile(path string, k Keypair) error {
	if k.IsZero() {
		return errors.New("cannot save empty keypair")
	}
	ints := make([]int, len(k.privateKey))
	for i, b := range k.privateKey {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create keypair directory: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
