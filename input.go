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
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"

	"github.com/corvid-systems/rid/internal/grammar"
)

// Input is the structured form of constructor input: raw octets in a
// declared encoding, plus the two hints that change how those octets
// become the string the grammar parses. Most callers use New or
// NewReference with a plain Go string instead.
type Input struct {
	// Octets is the identifier's raw bytes.
	Octets []byte
	// Encoding names Octets' character encoding: "utf-8" (default),
	// "utf-16le" or "utf-16be".
	Encoding string
	// IsCharacterNormalized, when true, skips the NFC pass NewFromInput
	// applies to the whole decoded text before parsing: the caller asserts
	// the text is already normalized. The CharacterNormalized ladder stage
	// still runs its own per-field rules either way.
	IsCharacterNormalized bool
}

// decode converts in.Octets to a string per in.Encoding, validating UTF-8
// when that is the (default) target encoding.
func (in Input) decode() (string, error) {
	switch in.Encoding {
	case "", "utf-8":
		if !utf8.Valid(in.Octets) {
			return "", newError(DecodeFailed, "octets are not valid UTF-8", nil)
		}
		return string(in.Octets), nil
	case "utf-16le":
		return decodeUTF16(in.Octets, unicode.LittleEndian)
	case "utf-16be":
		return decodeUTF16(in.Octets, unicode.BigEndian)
	default:
		return "", newError(InputShape, "unsupported encoding "+in.Encoding, nil)
	}
}

func decodeUTF16(octets []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, err := decoder.Bytes(octets)
	if err != nil {
		return "", newError(DecodeFailed, "invalid UTF-16 octets", err)
	}
	return string(out), nil
}

// New parses s as an identifier type name (e.g. "generic", "http") and
// input string, expecting an absolute identifier.
func New(typeName, s string) (*Identifier, error) {
	return newFromSetup(CurrentSetup(), typeName, s, false)
}

// NewFromInput parses a structured Input under typeName.
func NewFromInput(typeName string, in Input) (*Identifier, error) {
	s, err := in.decode()
	if err != nil {
		return nil, err
	}
	if !in.IsCharacterNormalized {
		s = norm.NFC.String(s)
	}
	return newFromSetup(CurrentSetup(), typeName, s, false)
}

// NewReference is like New but accepts a relative reference (no scheme).
func NewReference(typeName, s string) (*Identifier, error) {
	return newFromSetup(CurrentSetup(), typeName, s, true)
}

func newFromSetup(setup *Setup, typeName, s string, allowRelative bool) (*Identifier, error) {
	binding, err := setup.Bind(typeName)
	if err != nil {
		return nil, newError(BindingInvalid, typeName, err)
	}

	var result *grammar.Result
	if allowRelative {
		result, err = grammar.ParseReference(binding, s, false)
	} else {
		result, err = grammar.Parse(binding, s, false)
	}
	if err != nil {
		return nil, wrapGrammarError(err)
	}
	return &Identifier{binding: binding, raw: s, result: result}, nil
}
