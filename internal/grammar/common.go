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

import (
	"strings"

	"github.com/corvid-systems/rid/internal/charset"
	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/param"
)

// parseCommon parses the "common" identifier kind's grammar:
// scheme ":" opaque [ "#" fragment ].
func parseCommon(b *param.Binding, raw string, unchecked bool) (*Result, error) {
	colon := strings.Index(raw, ":")
	if colon <= 0 {
		return nil, rejected("missing scheme delimiter", raw)
	}
	scheme := raw[:colon]
	if err := validateScheme(scheme, unchecked); err != nil {
		return nil, err
	}
	rest := raw[colon+1:]

	opaque, fragment, hasFragment := rest, "", false
	if hash := strings.Index(rest, "#"); hash != -1 {
		opaque, fragment, hasFragment = rest[:hash], rest[hash+1:], true
	}
	if err := validateOpaque(opaque, unchecked); err != nil {
		return nil, err
	}
	if err := validateFragment(fragment, unchecked); err != nil {
		return nil, err
	}

	r := newResult(ladder.KindCommon)
	schemeSnap := b.Engine.ReduceLiteral("scheme", scheme)
	opaqueSnap := b.Engine.ReduceLiteral("opaque", opaque)
	r.set("scheme", schemeSnap)
	r.set("opaque", opaqueSnap)

	children := []ladder.Snapshot{schemeSnap, ladder.Leaf(":"), opaqueSnap}
	if hasFragment {
		fragSnap := b.Engine.ReduceLiteral("fragment", fragment)
		r.set("fragment", fragSnap)
		children = append(children, ladder.Leaf("#"), fragSnap)
	}

	r.Output = b.Engine.Reduce("output", children...)
	return r, nil
}

func validateScheme(scheme string, unchecked bool) error {
	if scheme == "" {
		return rejected("empty scheme", "")
	}
	if unchecked {
		return nil
	}
	if !charset.IsASCIILetter(rune(scheme[0])) {
		return rejected("scheme must start with a letter", scheme)
	}
	for _, r := range scheme {
		if !charset.IsASCIILetter(r) && !charset.IsASCIIDigit(r) && r != '+' && r != '-' && r != '.' {
			return rejected("invalid character in scheme", string(r))
		}
	}
	return nil
}

func validateOpaque(opaque string, unchecked bool) error {
	if unchecked {
		return nil
	}
	for _, r := range opaque {
		if r == '%' || r == '/' || r == '?' || r == ':' || r == '@' || charset.IsIUnreservedOrSubDelims(r) {
			continue
		}
		return rejected("invalid character in opaque part", string(r))
	}
	return nil
}
