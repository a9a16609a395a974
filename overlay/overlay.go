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

// Package overlay holds the scheme-specific Parameterization overlays this
// module ships, each composing scheme-based defaults over the generic
// kind's built-in tables the way the teacher's normalizeHostAndPort
// default-port table did inline for http, https, ftp, ws and wss.
package overlay

import (
	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/param"
)

// withDefaultPort returns a param.Overlay customize function that extends
// the SchemeBasedNormalized stage's "port" rule: a port matching
// defaultPort normalizes away to empty, any other port is left alone.
func withDefaultPort(defaultPort string) func(*ladder.Engine) *ladder.Engine {
	return func(e *ladder.Engine) *ladder.Engine {
		out := *e
		out.Normalize[ladder.SchemeBasedNormalized] = e.Normalize[ladder.SchemeBasedNormalized].Extend()
		out.Normalize[ladder.SchemeBasedNormalized].Set("port", func(port string) string {
			if port == defaultPort {
				return ""
			}
			return port
		})
		return &out
	}
}

// HTTP is the overlay for the "http" scheme.
var HTTP = param.NewOverlay("http", "80", false, true, withDefaultPort("80"))

// HTTPS is the overlay for the "https" scheme.
var HTTPS = param.NewOverlay("https", "443", true, true, withDefaultPort("443"))

// FTP is the overlay for the "ftp" scheme.
var FTP = param.NewOverlay("ftp", "21", false, true, withDefaultPort("21"))

// WS is the overlay for the "ws" (WebSocket) scheme.
var WS = param.NewOverlay("ws", "80", false, true, withDefaultPort("80"))

// WSS is the overlay for the "wss" (WebSocket Secure) scheme.
var WSS = param.NewOverlay("wss", "443", true, true, withDefaultPort("443"))

// LDAP is the overlay for the "ldap" scheme (RFC 4516). LDAP URLs use a
// DN-shaped path and default to port 389; the overlay reports Secure as
// true. No "ldaps" overlay is bound as a default identifier type by this
// module; a caller can construct one with the same overlay shape via
// param.NewOverlay.
var LDAP = param.NewOverlay("ldap", "389", true, true, withDefaultPort("389"))

// Generic is the zero-value overlay: no scheme customization, used to bind
// the plain "generic" identifier type with only the built-in tables.
var Generic param.Overlay
