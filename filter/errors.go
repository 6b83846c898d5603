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

package filter

import "fmt"

// FilterTooLongError indicates a filter value that can never match because it
// is larger than the field it targets
type FilterTooLongError struct {
	Field  string
	Length int
	Max    int
}

func (e FilterTooLongError) Error() string {
	return fmt.Sprintf(
		"filter on %s is %d bytes, exceeding the field maximum of %d",
		e.Field,
		e.Length,
		e.Max,
	)
}
