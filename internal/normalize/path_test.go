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

package normalize

import "testing"

func TestRemoveDotSegments(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "RFC 3986 example 1", in: "/a/b/c/./../../g", want: "/a/g"},
		{name: "RFC 3986 example 2", in: "mid/content=5/../6", want: "mid/6"},
		{name: "leading dot-dot has nothing to climb", in: "/../a", want: "/a"},
		{name: "bare dot-dot", in: "..", want: ""},
		{name: "bare dot", in: ".", want: ""},
		{name: "no dot segments", in: "/a/b/c", want: "/a/b/c"},
		{name: "empty path", in: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemoveDotSegments(tc.in)
			if got != tc.want {
				t.Errorf("RemoveDotSegments(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
