/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package grammar

import "fmt"

// Kind classifies a grammar-level parse failure. The root package's
// error type translates these into the module's public error kinds.
type Kind int

const (
	// Rejected means the input text does not match the bound grammar at
	// all (the teacher's generic parse-error case).
	Rejected Kind = iota
	// Ambiguous means a deterministic recursive-descent parse cannot
	// choose between two structurally valid readings of the input — the
	// one case this parser design can actually encounter, a
	// "scheme:rootless-path" reference that could be read as either an
	// absolute reference or a relative-path segment containing a colon.
	Ambiguous
	// InputShape means the input's encoding or representation is
	// malformed before grammar matching can even begin.
	InputShape
)

// Error is returned by Parse and ParseReference on any grammar-level
// failure.
type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

func rejected(message, details string) *Error {
	return &Error{Kind: Rejected, Message: message, Details: details}
}

func ambiguous(message, details string) *Error {
	return &Error{Kind: Ambiguous, Message: message, Details: details}
}
