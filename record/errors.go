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

package record

import (
	"fmt"

	"github.com/blinklabs-io/gotweet/ledger/common"
)

// MalformedRecordError indicates account bytes that do not fit the layout
type MalformedRecordError struct {
	Address common.PublicKey
	Err     error
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at %s: %v", e.Address, e.Err)
}

func (e MalformedRecordError) Unwrap() error { return e.Err }

// WrongRecordTypeError indicates an account whose discriminator belongs to a
// different record type
type WrongRecordTypeError struct {
	Address  common.PublicKey
	Expected []byte
	Actual   []byte
}

func (e WrongRecordTypeError) Error() string {
	return fmt.Sprintf(
		"account %s has discriminator %x, expected %x",
		e.Address,
		e.Actual,
		e.Expected,
	)
}

// ValidationError indicates a field value that exceeds the size the ledger accepts
type ValidationError struct {
	Field  string
	Length int
	Max    int
}

func (e ValidationError) Error() string {
	return fmt.Sprintf(
		"%s is %d bytes, exceeding the maximum of %d",
		e.Field,
		e.Length,
		e.Max,
	)
}

// InvalidUTF8Error indicates a text field whose bytes are not valid UTF-8
type InvalidUTF8Error struct {
	Field string
}

func (e InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8", e.Field)
}
