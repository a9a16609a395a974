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
)

// splitSegments splits a path into its "/"-delimited segments. The first
// element is "" for an absolute path (one starting with "/"), matching
// the uriCompat convention ladder.NewGenericRecord documents.
func splitSegments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func validatePathChar(r rune, unchecked bool) error {
	if unchecked {
		return nil
	}
	if r == '%' || r == '/' || r == ':' || r == '@' || charset.IsIUnreservedOrSubDelims(r) {
		return nil
	}
	return rejected("invalid character in path", string(r))
}

func validatePath(path string, unchecked bool) error {
	if unchecked {
		return nil
	}
	for _, r := range path {
		if err := validatePathChar(r, unchecked); err != nil {
			return err
		}
	}
	return nil
}

func validateQuery(query string, unchecked bool) error {
	if unchecked {
		return nil
	}
	for _, r := range query {
		if r == '%' || r == '/' || r == '?' || r == ':' || r == '@' ||
			charset.IsIUnreservedOrSubDelims(r) || charset.IsIPrivate(r) {
			continue
		}
		return rejected("invalid character in query", string(r))
	}
	return nil
}

func validateFragment(fragment string, unchecked bool) error {
	if unchecked {
		return nil
	}
	for _, r := range fragment {
		if r == '%' || r == '/' || r == '?' || r == ':' || r == '@' || charset.IsIUnreservedOrSubDelims(r) {
			continue
		}
		return rejected("invalid character in fragment", string(r))
	}
	return nil
}
