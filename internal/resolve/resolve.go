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

// Package resolve implements RFC 3986, Section 5.3's reference resolution
// (the Transform algorithm merging a relative reference against a base
// identifier), generalizing the teacher's resolve.go and path.go.
package resolve

import (
	"strings"

	"github.com/corvid-systems/rid/internal/grammar"
	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/internal/normalize"
	"github.com/corvid-systems/rid/param"
)

// NotAbsolute is returned by Resolve when the base identifier has no
// scheme: RFC 3986, Section 5.1 requires a base URI to be absolute.
type NotAbsolute struct{ Raw string }

func (e *NotAbsolute) Error() string { return "resolve: base identifier is not absolute: " + e.Raw }

// Resolve implements RFC 3986, Section 5.3's Transform algorithm: ref
// (which may itself be absolute, in which case its own scheme, authority
// and query are kept and only dot segments are removed from its path) is
// resolved against base, producing a new absolute
// Result with every field recomputed through b's grammar and ladder
// tables, so the resolved identifier's normalized forms are correct
// rather than inherited piecemeal from base and ref.
func Resolve(b *param.Binding, base *grammar.Result, baseRaw string, ref *grammar.Result, refRaw string, unchecked bool) (*grammar.Result, error) {
	if !base.Has["scheme"] {
		return nil, &NotAbsolute{Raw: baseRaw}
	}

	targetScheme := raw(base, "scheme")
	var targetAuthority, targetPath, targetQuery string
	hasAuthority, hasQuery := false, false

	if ref.Has["scheme"] {
		targetScheme = raw(ref, "scheme")
		if ref.Has["authority"] {
			targetAuthority, hasAuthority = raw(ref, "authority"), true
		}
		targetPath = normalize.RemoveDotSegments(raw(ref, "path"))
		if ref.Has["query"] {
			targetQuery, hasQuery = raw(ref, "query"), true
		}
	} else if ref.Has["authority"] {
		targetAuthority, hasAuthority = raw(ref, "authority"), true
		targetPath = normalize.RemoveDotSegments(raw(ref, "path"))
		if ref.Has["query"] {
			targetQuery, hasQuery = raw(ref, "query"), true
		}
	} else {
		refPath := raw(ref, "path")
		switch {
		case refPath == "":
			targetPath = raw(base, "path")
			if ref.Has["query"] {
				targetQuery, hasQuery = raw(ref, "query"), true
			} else if base.Has["query"] {
				targetQuery, hasQuery = raw(base, "query"), true
			}
		case strings.HasPrefix(refPath, "/"):
			targetPath = normalize.RemoveDotSegments(refPath)
			if ref.Has["query"] {
				targetQuery, hasQuery = raw(ref, "query"), true
			}
		default:
			targetPath = normalize.RemoveDotSegments(mergePath(base, refPath))
			if ref.Has["query"] {
				targetQuery, hasQuery = raw(ref, "query"), true
			}
		}
		if base.Has["authority"] {
			targetAuthority, hasAuthority = raw(base, "authority"), true
		}
	}

	var b2 strings.Builder
	b2.WriteString(targetScheme)
	b2.WriteByte(':')
	if hasAuthority {
		b2.WriteString("//")
		b2.WriteString(targetAuthority)
	}
	b2.WriteString(targetPath)
	if hasQuery {
		b2.WriteByte('?')
		b2.WriteString(targetQuery)
	}
	if ref.Has["fragment"] {
		b2.WriteByte('#')
		b2.WriteString(raw(ref, "fragment"))
	}

	return grammar.Parse(b, b2.String(), unchecked)
}

// raw reads a field's Raw-stage value out of a parsed Result.
func raw(r *grammar.Result, field string) string {
	if snap, ok := r.Fields[field]; ok {
		return snap[ladder.Raw]
	}
	return ""
}

// mergePath implements RFC 3986, Section 5.3's merge routine: the
// relative-reference path replaces everything in base's path after its
// last "/", or is appended wholesale if base has authority but an empty
// path.
func mergePath(base *grammar.Result, refPath string) string {
	basePath := raw(base, "path")
	if basePath == "" && base.Has["authority"] {
		return "/" + refPath
	}
	if idx := strings.LastIndex(basePath, "/"); idx != -1 {
		return basePath[:idx+1] + refPath
	}
	return refPath
}
