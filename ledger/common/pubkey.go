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
	"encoding/json"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/gotweet/cbor"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const PublicKeySize = 32

// PublicKey identifies an account or a signer on the ledger. Its canonical
// string form is base58
type PublicKey [PublicKeySize]byte

// NewPublicKey returns a PublicKey from raw bytes
func NewPublicKey(data []byte) (PublicKey, error) {
	if len(data) != PublicKeySize {
		return PublicKey{}, fmt.Errorf(
			"invalid public key length: %d",
			len(data),
		)
	}
	var p PublicKey
	copy(p[:], data)
	return p, nil
}

// NewPublicKeyFromString parses the base58 form of a public key
func NewPublicKeyFromString(s string) (PublicKey, error) {
	if s == "" {
		return PublicKey{}, fmt.Errorf("empty public key")
	}
	// base58.Decode returns an empty slice for invalid input
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return PublicKey{}, fmt.Errorf("invalid base58 public key: %q", s)
	}
	p, err := NewPublicKey(decoded)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key %q: %w", s, err)
	}
	return p, nil
}

// MustPublicKey is like NewPublicKeyFromString but panics on error
func MustPublicKey(s string) PublicKey {
	p, err := NewPublicKeyFromString(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func (p PublicKey) String() string {
	return base58.Encode(p[:])
}

func (p PublicKey) Bytes() []byte {
	return bytes.Clone(p[:])
}

func (p PublicKey) IsZero() bool {
	return p == PublicKey{}
}

// IsOnCurve reports whether the key is a valid ed25519 curve point. Keys
// derived by programs rather than keypairs are off the curve
func (p PublicKey) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(p[:])
	return err == nil
}

func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PublicKey) UnmarshalText(data []byte) error {
	tmp, err := NewPublicKeyFromString(string(data))
	if err != nil {
		return err
	}
	*p = tmp
	return nil
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

func (p PublicKey) MarshalCBOR() ([]byte, error) {
	// Always encode a full-sized bytestring, even for the zero key
	return cbor.Encode(p[:])
}

func (p *PublicKey) UnmarshalCBOR(data []byte) error {
	var tmp []byte
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	key, err := NewPublicKey(tmp)
	if err != nil {
		return err
	}
	*p = key
	return nil
}
