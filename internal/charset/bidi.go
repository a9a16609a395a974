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

package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// ErrBidi is returned when a component violates the RFC 3987, Section 4.2
// bidirectional formatting rules.
var ErrBidi = errors.New("invalid bidirectional IRI component")

// ValidateBidiComponent checks a component string against the structural
// rules for bidirectional IRIs defined in RFC 3987, Section 4.2:
//
//  1. A component SHOULD NOT mix right-to-left and left-to-right characters.
//  2. A component using right-to-left characters SHOULD start and end with
//     right-to-left characters.
func ValidateBidiComponent(component string) error {
	if component == "" {
		return nil
	}

	runes := []rune(component)
	var hasLTR, hasRTL bool
	for _, r := range runes {
		switch prop, _ := bidi.LookupRune(r); prop.Class() {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		}
	}

	if hasLTR && hasRTL {
		return fmt.Errorf("%w: %q mixes left-to-right and right-to-left characters", ErrBidi, component)
	}

	if hasRTL {
		if !isRTLClass(runes[0]) || !isRTLClass(runes[len(runes)-1]) {
			return fmt.Errorf("%w: %q must start and end with right-to-left characters", ErrBidi, component)
		}
	}
	return nil
}

func isRTLClass(r rune) bool {
	prop, _ := bidi.LookupRune(r)
	class := prop.Class()
	return class == bidi.R || class == bidi.AL
}

// ValidateBidiHost validates a host string under the Bidi rules, treating
// each dot-separated label as an individual component per RFC 3987,
// Section 4.2. IP literals (delimited by brackets) are exempt.
func ValidateBidiHost(host string) error {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return nil
	}
	for _, label := range strings.Split(host, ".") {
		if err := ValidateBidiComponent(label); err != nil {
			return fmt.Errorf("invalid host label in %q: %w", host, err)
		}
	}
	return nil
}
