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

	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/param"
)

// Parse runs the grammar bound by b against raw, the complete text of one
// identifier. unchecked disables character-class and structural
// validation, mirroring the teacher's lenient "unchecked" construction
// path for text already known to be well-formed.
func Parse(b *param.Binding, raw string, unchecked bool) (*Result, error) {
	raw = preParseNormalize(b, raw)
	if b.Kind == ladder.KindCommon {
		return parseCommon(b, raw, unchecked)
	}
	return parseGeneric(b, raw, unchecked, true)
}

// ParseReference runs the grammar's IRI-reference production: either a
// full absolute identifier (requireScheme reachable) or a relative
// reference with no scheme. It is used by the reference resolver, which
// needs to parse a potentially-relative second argument.
func ParseReference(b *param.Binding, raw string, unchecked bool) (*Result, error) {
	raw = preParseNormalize(b, raw)
	if b.Kind == ladder.KindCommon {
		return parseCommon(b, raw, unchecked)
	}
	return parseGeneric(b, raw, unchecked, false)
}

// preParseNormalize runs b's engine once over the whole of raw under the
// empty criteria key (ladder.Engine.ReduceWhole), producing the
// pre-parse-normalized text the grammar actually tokenizes instead of the
// literal input, per spec Section 4.2's mandatory whole-input pass.
func preParseNormalize(b *param.Binding, raw string) string {
	return b.Engine.ReduceWhole(raw)[ladder.Normalized]
}

// parseGeneric implements the Generic kind's grammar:
//
//	IRI            = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//	relative-ref   = relative-part [ "?" query ] [ "#" fragment ]
//
// requireScheme selects between the two: when false and no scheme is
// present, the text is parsed as a relative-ref instead of rejected.
func parseGeneric(b *param.Binding, raw string, unchecked bool, requireScheme bool) (*Result, error) {
	rest := raw
	var schemeSnap ladder.Snapshot
	hasScheme := false

	if colon := schemeDelimiter(raw); colon != -1 {
		scheme := raw[:colon]
		if err := validateScheme(scheme, unchecked); err == nil {
			if !requireScheme {
				if err := rejectAmbiguousRootless(scheme, raw[colon+1:]); err != nil {
					return nil, err
				}
			}
			schemeSnap = b.Engine.ReduceLiteral("scheme", scheme)
			hasScheme = true
			rest = raw[colon+1:]
		} else if requireScheme {
			return nil, err
		}
	} else if requireScheme {
		return nil, rejected("missing scheme delimiter", raw)
	}

	fragment, hasFragment := "", false
	if hash := strings.Index(rest, "#"); hash != -1 {
		fragment, hasFragment = rest[hash+1:], true
		rest = rest[:hash]
	}
	query, hasQuery := "", false
	if q := strings.Index(rest, "?"); q != -1 {
		query, hasQuery = rest[q+1:], true
		rest = rest[:q]
	}
	if err := validateFragment(fragment, unchecked); hasFragment && err != nil {
		return nil, err
	}
	if err := validateQuery(query, unchecked); hasQuery && err != nil {
		return nil, err
	}

	r := newResult(ladder.KindGeneric)
	children := []ladder.Snapshot{}
	if hasScheme {
		r.set("scheme", schemeSnap)
		children = append(children, schemeSnap, ladder.Leaf(":"))
	}

	partSnap, partChildren, err := parseHierOrRelativePart(b, r, rest, unchecked)
	if err != nil {
		return nil, err
	}
	children = append(children, partChildren...)
	if hasScheme {
		r.set("hier_part", partSnap)
	} else {
		r.set("relative_part", partSnap)
	}

	if hasQuery {
		querySnap := b.Engine.ReduceLiteral("query", query)
		r.set("query", querySnap)
		children = append(children, ladder.Leaf("?"), querySnap)
	}
	if hasFragment {
		fragSnap := b.Engine.ReduceLiteral("fragment", fragment)
		r.set("fragment", fragSnap)
		children = append(children, ladder.Leaf("#"), fragSnap)
	}

	r.Output = b.Engine.Reduce("output", children...)
	return r, nil
}

// schemeDelimiter returns the index of the ":" that would separate a
// leading scheme from the rest of raw, or -1 if raw cannot begin with a
// scheme (the first character is not a letter, or there is no colon
// before the first "/", "?" or "#").
func schemeDelimiter(raw string) int {
	for i, r := range raw {
		switch r {
		case ':':
			return i
		case '/', '?', '#':
			return -1
		}
		if i == 0 && !isSchemeStart(r) {
			return -1
		}
	}
	return -1
}

func isSchemeStart(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// rejectAmbiguousRootless implements the one genuine structural ambiguity
// a deterministic recursive-descent parser can hit: "scheme:rootless-path"
// read as a relative reference is indistinguishable from the same text
// read as an absolute reference with an opaque-looking hier-part, so a
// relative-ref grammar pass must refuse it rather than silently pick one
// reading.
func rejectAmbiguousRootless(scheme, afterColon string) error {
	if strings.HasPrefix(afterColon, "/") {
		return nil
	}
	return ambiguous("relative reference beginning with a valid scheme and colon is ambiguous with an absolute reference", scheme+":"+afterColon)
}

// parseHierOrRelativePart dispatches on the authority-form marker "//"
// versus the three path-only forms, populating r's authority/path fields
// and returning the Snapshots to splice into the whole-identifier output.
func parseHierOrRelativePart(b *param.Binding, r *Result, rest string, unchecked bool) (ladder.Snapshot, []ladder.Snapshot, error) {
	if strings.HasPrefix(rest, "//") {
		authorityPart, path := splitAuthorityAndPath(rest[2:])
		authSnap, authChildren, err := parseAuthorityPart(b, r, authorityPart, unchecked)
		if err != nil {
			return ladder.Snapshot{}, nil, err
		}
		if err := validatePath(path, unchecked); err != nil {
			return ladder.Snapshot{}, nil, err
		}
		pathSnap := buildPathSnapshot(b, r, path)
		children := append([]ladder.Snapshot{ladder.Leaf("//")}, authChildren...)
		children = append(children, pathSnap)
		return authSnap, children, nil
	}

	if err := validatePath(rest, unchecked); err != nil {
		return ladder.Snapshot{}, nil, err
	}
	pathSnap := buildPathSnapshot(b, r, rest)
	return pathSnap, []ladder.Snapshot{pathSnap}, nil
}

// portSegment builds the ":" + port Snapshot as a function of portSnap's
// own per-stage value, so a stage that elides the port (scheme-based
// default-port normalization) elides its leading colon too, instead of
// leaving a dangling separator the way a structurally fixed literal
// child would.
func portSegment(portSnap ladder.Snapshot) ladder.Snapshot {
	var out ladder.Snapshot
	for i, v := range portSnap {
		if v != "" {
			out[i] = ":" + v
		}
	}
	return out
}

func splitAuthorityAndPath(s string) (authority, path string) {
	if idx := strings.IndexByte(s, '/'); idx != -1 {
		return s[:idx], s[idx:]
	}
	return s, ""
}

func parseAuthorityPart(b *param.Binding, r *Result, authority string, unchecked bool) (ladder.Snapshot, []ladder.Snapshot, error) {
	userinfo, host, port := splitAuthority(authority)
	if err := validateUserinfo(userinfo, unchecked); err != nil {
		return ladder.Snapshot{}, nil, err
	}
	if err := validateHostShape(host, unchecked); err != nil {
		return ladder.Snapshot{}, nil, err
	}
	if err := validatePort(port, unchecked); err != nil {
		return ladder.Snapshot{}, nil, err
	}

	var children []ladder.Snapshot
	if userinfo != "" {
		uiSnap := b.Engine.ReduceLiteral("userinfo", userinfo)
		r.set("userinfo", uiSnap)
		children = append(children, uiSnap, ladder.Leaf("@"))
	}

	hostSnap := b.Engine.ReduceLiteral("host", host)
	r.set("host", hostSnap)
	children = append(children, hostSnap)

	field, inner := classifyHost(host)
	if strings.HasPrefix(host, "[") {
		r.set("ip_literal", hostSnap)
		r.set(field, b.Engine.ReduceLiteral(field, inner))
	} else {
		r.set(field, hostSnap)
	}

	if port != "" {
		portSnap := b.Engine.ReduceLiteral("port", port)
		r.set("port", portSnap)
		children = append(children, portSegment(portSnap))
	}

	authSnap := b.Engine.Reduce("authority", children...)
	r.set("authority", authSnap)
	return authSnap, children, nil
}

func buildPathSnapshot(b *param.Binding, r *Result, path string) ladder.Snapshot {
	segments := splitSegments(path)
	var children []ladder.Snapshot
	for i, seg := range segments {
		segSnap := b.Engine.ReduceLiteral("segment", seg)
		r.Segments = append(r.Segments, segSnap)
		if i > 0 {
			children = append(children, ladder.Leaf("/"))
		}
		children = append(children, segSnap)
	}
	pathSnap := b.Engine.Reduce("path", children...)
	r.set("path", pathSnap)
	return pathSnap
}
