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

package ledger

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotweet/ledger/common"
)

var (
	ErrNoSigner         = errors.New("no signer configured")
	ErrInvalidSignature = errors.New("transaction signature verification failed")
)

// Program error codes
const (
	ErrorCodeInstructionDidNotDeserialize = 102
	ErrorCodeTopicTooLong                 = 6000
	ErrorCodeContentTooLong               = 6001
)

// NotFoundError indicates that no account exists at an address
type NotFoundError struct {
	Address common.PublicKey
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.Address)
}

// ProgramError is a rejection returned by the ledger program
type ProgramError struct {
	Code    int
	Message string
}

func (e ProgramError) Error() string {
	return fmt.Sprintf("program error %d: %s", e.Code, e.Message)
}

var (
	errInstructionDidNotDeserialize = ProgramError{
		Code:    ErrorCodeInstructionDidNotDeserialize,
		Message: "The program could not deserialize the given instruction",
	}
	errTopicTooLong = ProgramError{
		Code:    ErrorCodeTopicTooLong,
		Message: "The provided Topic should be 50 Characters long Maximum",
	}
	errContentTooLong = ProgramError{
		Code:    ErrorCodeContentTooLong,
		Message: "The provided Content should be 280 Characters long Maximum",
	}
)
