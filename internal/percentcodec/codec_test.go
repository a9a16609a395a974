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

package percentcodec

import (
	"testing"

	"github.com/corvid-systems/rid/internal/charset"
)

func TestUnescape(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "decodes unreserved letter", in: "%61", want: "a"},
		{name: "leaves reserved delimiter encoded", in: "%2F", want: "%2F"},
		{name: "leaves malformed run untouched", in: "%gg", want: "%gg"},
		{name: "leaves invalid utf-8 untouched", in: "%FF", want: "%FF"},
		{name: "passthrough literal text", in: "hello", want: "hello"},
		{name: "lone percent at end", in: "100%", want: "100%"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Unescape(tc.in, charset.IsUnreservedOrSubDelims)
			if got != tc.want {
				t.Errorf("Unescape(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	got := Encode("a b", func(r rune) bool { return r == ' ' })
	want := "a%20b"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestDecodeValidated(t *testing.T) {
	if _, ok := DecodeValidated("%FF"); ok {
		t.Error("DecodeValidated(%FF) should fail, invalid UTF-8")
	}
	decoded, ok := DecodeValidated("%C3%A9")
	if !ok || decoded != "é" {
		t.Errorf("DecodeValidated(%%C3%%A9) = %q, %v, want \"é\", true", decoded, ok)
	}
}
