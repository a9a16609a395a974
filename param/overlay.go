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

package param

import "github.com/corvid-systems/rid/internal/ladder"

// Overlay customizes a generic-kind binding for one scheme without
// replacing its defaults. Apply receives the engine already populated with
// the built-in normalizer and converter tables and returns an engine that
// composes scheme-specific behavior over them via Table.Extend, plus the
// scheme's structural defaults (default port, whether the scheme is
// considered secure, and whether reg_name should be treated as a DNS
// domain name for IDNA conversion).
type Overlay interface {
	// Name identifies the overlay, typically the scheme it customizes.
	Name() string
	// Apply composes scheme-specific normalizer/converter entries over the
	// engine's existing tables and returns the resulting engine.
	Apply(engine *ladder.Engine) *ladder.Engine
	// DefaultPort is the scheme's default port, or "" if the scheme has
	// none. A port matching DefaultPort is elided by scheme-based
	// normalization.
	DefaultPort() string
	// Secure reports whether the scheme denotes a transport-secured
	// variant of a base scheme (https relative to http, wss to ws).
	Secure() bool
	// RegNameIsDomainName reports whether an authority reg-name under this
	// scheme should be treated as a DNS domain name: eligible for IDNA
	// ToASCII/ToUnicode conversion during URI/IRI conversion.
	RegNameIsDomainName() bool
}

// baseOverlay is an Overlay with no normalizer/converter customization,
// useful as an embeddable default for overlays that only need to override
// the structural methods.
type baseOverlay struct {
	name                string
	defaultPort         string
	secure              bool
	regNameIsDomainName bool
}

func (b baseOverlay) Name() string        { return b.name }
func (b baseOverlay) DefaultPort() string { return b.defaultPort }
func (b baseOverlay) Secure() bool        { return b.secure }
func (b baseOverlay) RegNameIsDomainName() bool { return b.regNameIsDomainName }
func (b baseOverlay) Apply(engine *ladder.Engine) *ladder.Engine { return engine }

// customOverlay adapts a plain customize function into an Overlay, letting
// package overlay declare one small value per scheme instead of a full
// type implementing the interface by hand.
type customOverlay struct {
	baseOverlay
	customize func(*ladder.Engine) *ladder.Engine
}

func (c customOverlay) Apply(engine *ladder.Engine) *ladder.Engine {
	if c.customize == nil {
		return engine
	}
	return c.customize(engine)
}

// NewOverlay builds an Overlay named name, with the given structural
// defaults, whose Apply runs customize (which should compose new table
// entries via Table.Extend rather than discard the engine it is handed). A
// nil customize leaves the engine's tables untouched.
func NewOverlay(name, defaultPort string, secure, regNameIsDomainName bool, customize func(*ladder.Engine) *ladder.Engine) Overlay {
	return customOverlay{
		baseOverlay: baseOverlay{name: name, defaultPort: defaultPort, secure: secure, regNameIsDomainName: regNameIsDomainName},
		customize:   customize,
	}
}
