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
	"net"
	"strings"

	"github.com/corvid-systems/rid/internal/charset"
)

// splitAuthority parses an authority string into its userinfo, host and
// port substrings, without validating their content.
func splitAuthority(authority string) (userinfo, host, port string) {
	if at := strings.LastIndex(authority, "@"); at != -1 {
		userinfo = authority[:at]
		authority = authority[at+1:]
	}

	if strings.HasPrefix(authority, "[") {
		if end := strings.LastIndex(authority, "]"); end != -1 {
			host = authority[:end+1]
			if len(authority) > end+1 && authority[end+1] == ':' {
				port = authority[end+2:]
			}
			return userinfo, host, port
		}
		return userinfo, authority, port
	}

	if idx := strings.LastIndex(authority, ":"); idx != -1 {
		return userinfo, authority[:idx], authority[idx+1:]
	}
	return userinfo, authority, port
}

func validateUserinfo(userinfo string, unchecked bool) error {
	if unchecked || userinfo == "" {
		return nil
	}
	for _, r := range userinfo {
		if r == '%' || r == ':' || charset.IsIUnreservedOrSubDelims(r) {
			continue
		}
		return rejected("invalid character in userinfo", string(r))
	}
	return charset.ValidateBidiComponent(stripPercentRuns(userinfo))
}

func validateHostShape(host string, unchecked bool) error {
	if unchecked || host == "" {
		return nil
	}
	if strings.HasPrefix(host, "[") {
		if !strings.HasSuffix(host, "]") {
			return rejected("unterminated IP literal", host)
		}
		return validateIPLiteral(host[1 : len(host)-1])
	}
	for _, r := range host {
		if r == '%' || charset.IsIUnreservedOrSubDelims(r) {
			continue
		}
		return rejected("invalid character in host", string(r))
	}
	return charset.ValidateBidiHost(stripPercentRuns(host))
}

func validateIPLiteral(lit string) error {
	if strings.HasPrefix(lit, "v") || strings.HasPrefix(lit, "V") {
		return validateIPvFuture(lit)
	}
	if net.ParseIP(lit) == nil {
		return rejected("invalid IP literal", lit)
	}
	return nil
}

func validateIPvFuture(lit string) error {
	parts := strings.SplitN(lit[1:], ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return rejected("malformed IPvFuture literal", lit)
	}
	for _, r := range parts[0] {
		if !charset.IsASCIIHexDigit(r) {
			return rejected("invalid IPvFuture version character", string(r))
		}
	}
	for _, r := range parts[1] {
		if !charset.IsUnreservedOrSubDelims(r) && r != ':' {
			return rejected("invalid IPvFuture address character", string(r))
		}
	}
	return nil
}

func validatePort(port string, unchecked bool) error {
	if unchecked {
		return nil
	}
	for _, r := range port {
		if !charset.IsASCIIDigit(r) {
			return rejected("invalid port character", string(r))
		}
	}
	return nil
}

// stripPercentRuns removes each "%" together with the two bytes after it
// (without checking that they are hex digits) before a Bidi structural
// check, since the Bidi class of an encoded octet's eventual character is
// judged after decoding, not on the percent digits themselves.
func stripPercentRuns(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// classifyHost reports which generic-record host sub-field (ip_literal,
// ipv4_address, reg_name, ipv6_address, ipv6_addrz or ipvfuture) a
// validated host string belongs in.
func classifyHost(host string) (field string, inner string) {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		inner = host[1 : len(host)-1]
		if strings.HasPrefix(inner, "v") || strings.HasPrefix(inner, "V") {
			return "ipvfuture", inner
		}
		if strings.Contains(inner, "%25") || strings.Contains(inner, "%") {
			return "ipv6_addrz", inner
		}
		return "ipv6_address", inner
	}
	if net.ParseIP(host) != nil && strings.Count(host, ".") == 3 {
		return "ipv4_address", host
	}
	return "reg_name", host
}
