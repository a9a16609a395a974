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

package rid

import (
	"errors"
	"fmt"

	"github.com/corvid-systems/rid/internal/grammar"
	"github.com/corvid-systems/rid/internal/resolve"
	"github.com/corvid-systems/rid/param"
)

// ErrorKind classifies why a rid operation failed.
type ErrorKind int

const (
	// InputShape means the raw input's representation (octets, declared
	// encoding, decode strategy) was self-contradictory before grammar
	// matching could begin.
	InputShape ErrorKind = iota
	// DecodeFailed means an Input's octets could not be decoded in their
	// declared encoding.
	DecodeFailed
	// GrammarRejected means the input does not match the bound grammar.
	GrammarRejected
	// GrammarAmbiguous means the input matches the bound grammar in more
	// than one way a deterministic parser cannot resolve.
	GrammarAmbiguous
	// NotAbsolute means an operation requiring an absolute identifier
	// (such as reference resolution's base argument) received one that
	// is not.
	NotAbsolute
	// WrongKind means an operation expected a Generic-kind identifier
	// and received a Common-kind one, or vice versa.
	WrongKind
	// BindingInvalid means a Parameterization Descriptor failed its
	// sanity checks.
	BindingInvalid
	// IndiceUnknown means a caller named a ladder stage that does not
	// exist.
	IndiceUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case InputShape:
		return "InputShape"
	case DecodeFailed:
		return "DecodeFailed"
	case GrammarRejected:
		return "GrammarRejected"
	case GrammarAmbiguous:
		return "GrammarAmbiguous"
	case NotAbsolute:
		return "NotAbsolute"
	case WrongKind:
		return "WrongKind"
	case BindingInvalid:
		return "BindingInvalid"
	case IndiceUnknown:
		return "IndiceUnknown"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type every exported rid operation returns. It pairs
// an ErrorKind a caller can switch on with a human-readable message and
// the underlying cause, mirroring the teacher's two-layer
// ParseError/kindError design.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("rid: %s: %v", e.Message, e.cause)
	}
	return "rid: " + e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// wrapGrammarError translates an internal grammar/param/resolve error into
// the public Error type with the appropriate ErrorKind.
func wrapGrammarError(err error) error {
	if err == nil {
		return nil
	}
	var ge *grammar.Error
	if errors.As(err, &ge) {
		kind := GrammarRejected
		if ge.Kind == grammar.Ambiguous {
			kind = GrammarAmbiguous
		}
		return newError(kind, ge.Message, err)
	}
	var bi *param.BindingInvalid
	if errors.As(err, &bi) {
		return newError(BindingInvalid, bi.Reason, err)
	}
	var na *resolve.NotAbsolute
	if errors.As(err, &na) {
		return newError(NotAbsolute, "base identifier is not absolute", err)
	}
	return newError(GrammarRejected, "parse failed", err)
}
