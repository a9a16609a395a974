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

import (
	"regexp"

	"github.com/corvid-systems/rid/internal/percentcodec"
)

// regexPredicate adapts a Descriptor's Reserved/Unreserved regex to the
// percentcodec.Predicate a single code point is tested against.
func regexPredicate(re *regexp.Regexp) percentcodec.Predicate {
	if re == nil {
		return nil
	}
	return func(r rune) bool { return re.MatchString(string(r)) }
}

// percentEncodingNormalize builds the PercentEncodingNormalized-stage rule
// for a field: decode-validate-reencode each "%HH" run, replacing it with
// its literal character whenever that character matches unreserved (the
// descriptor's Unreserved regex, not a hardcoded predicate, so a
// Descriptor can customize the unreserved set per scheme). Hex-digit case
// folding is the case_normalizer's job, applied earlier in the chain, so
// this does not re-uppercase the bytes it leaves percent-encoded.
func percentEncodingNormalize(unreserved *regexp.Regexp) func(string) string {
	pred := regexPredicate(unreserved)
	return func(value string) string {
		return percentcodec.Unescape(value, pred)
	}
}
