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

package layout

import "fmt"

// UnknownFieldError indicates a lookup of a field that is not part of the layout
type UnknownFieldError struct {
	RecordType string
	Field      string
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q in %s layout", e.Field, e.RecordType)
}

// DynamicOffsetError indicates a field whose position depends on the length of
// an earlier variable-length field
type DynamicOffsetError struct {
	RecordType string
	Field      string
}

func (e DynamicOffsetError) Error() string {
	return fmt.Sprintf(
		"field %q in %s layout follows a variable-length field and has no static offset",
		e.Field,
		e.RecordType,
	)
}

// OutOfBoundsError indicates record bytes that end before a field does
type OutOfBoundsError struct {
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"field %q at offset %d needs %d bytes but only %d remain",
		e.Field,
		e.Offset,
		e.Need,
		e.Have,
	)
}
