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

package rid

import (
	"fmt"
	"sync"

	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/overlay"
	"github.com/corvid-systems/rid/param"
)

// Setup holds the registry of Parameterization Descriptors this module's
// New, NewReference and NewFromInput functions resolve identifier type
// names against. A
// process normally uses the single default Setup returned by
// CurrentSetup, customized through Configure; tests may build their own
// with NewSetup for isolation.
type Setup struct {
	mu          sync.RWMutex
	descriptors map[string]param.Descriptor
	cache       *param.Binding
	cacheMu     sync.Mutex
	bindCache   map[string]*param.Binding

	// MarpaTraceTerminals, MarpaTraceValues and MarpaTrace are carried for
	// parity with spec Section 6's configuration keys (the teacher's
	// Marpa::R2 tracing knobs); this module's hand-written grammar runtime
	// has no Marpa trace stream to drive, so they default to 0 (off) and
	// are otherwise inert.
	MarpaTraceTerminals int
	MarpaTraceValues    int
	MarpaTrace          int

	// URICompat is the teacher's URI-compatibility mode flag. It is
	// carried as configuration only: no code path in this module reads
	// it, so it changes neither the Segments of a record built by
	// StructByIndice (always built with uriCompat off), nor the input text
	// (no wrapper stripping or trimming is done), nor the values of
	// AbsRemoteLeadingDots/RemoveDotSegmentsStrict.
	URICompat bool

	// PluginsDirname and ImplDirname name the on-disk directories the
	// teacher's scheme-plugin discovery walks ("Plugins", "Impl").
	// Plugin discovery itself is out of scope for this module (spec
	// Section 1's Non-goals); a caller embedding this module under the
	// teacher's directory-discovery convention can still read these
	// defaults instead of hardcoding the teacher's literal strings.
	PluginsDirname string
	ImplDirname    string

	// CanSchemeMethodname names the per-scheme capability-probe method
	// ("can_scheme") the teacher's plugin loader calls to ask a plugin
	// whether it handles a given scheme; carried for the same
	// out-of-scope-but-documented reason as PluginsDirname/ImplDirname.
	CanSchemeMethodname string

	// AbsRemoteLeadingDots and RemoveDotSegmentsStrict govern two edge
	// cases of RFC 3986 Section 5.2's Transform/remove_dot_segments
	// algorithm (a remote reference's path beginning with ".." segments,
	// and whether remove_dot_segments rejects rather than tolerates a
	// malformed dot-segment run) that the teacher's own abs()/resolve
	// path makes dependent on URICompat. NewSetup leaves both at their
	// zero value (false) whatever URICompat holds, until a caller sets
	// them; neither the resolver nor RemoveDotSegments reads them.
	AbsRemoteLeadingDots    bool
	RemoveDotSegmentsStrict bool
}

// NewSetup returns an empty Setup with none of the built-in identifier
// types registered, and every Section 6 configuration key at its
// documented zero-value default (Marpa trace flags off, URICompat off,
// PluginsDirname "Plugins", ImplDirname "Impl", CanSchemeMethodname
// "can_scheme", AbsRemoteLeadingDots/RemoveDotSegmentsStrict off).
func NewSetup() *Setup {
	return &Setup{
		descriptors:         make(map[string]param.Descriptor),
		bindCache:           make(map[string]*param.Binding),
		PluginsDirname:      "Plugins",
		ImplDirname:         "Impl",
		CanSchemeMethodname: "can_scheme",
	}
}

// Register adds or replaces the Parameterization Descriptor named
// d.Name. It does not itself validate the descriptor; validation and
// table composition happen lazily on first Bind.
func (s *Setup) Register(d param.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.descriptors[d.Name] = d
	delete(s.bindCache, d.Name)
}

// Bind resolves name to its bound Binding, binding it on first use.
func (s *Setup) Bind(name string) (*param.Binding, error) {
	s.mu.RLock()
	d, ok := s.descriptors[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("rid: no identifier type registered as %q", name)
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if b, ok := s.bindCache[name]; ok {
		return b, nil
	}
	b, err := param.Bind(d)
	if err != nil {
		return nil, err
	}
	s.bindCache[name] = b
	return b, nil
}

// defaultDescriptors lists the identifier types this module ships:
// "generic" (no scheme customization) and one overlay-bound type per
// scheme with a well-known default port.
func defaultDescriptors() []param.Descriptor {
	generic := func(name string, ov param.Overlay) param.Descriptor {
		return param.Descriptor{
			Name:         name,
			Kind:         ladder.KindGeneric,
			FieldMapping: param.IdentityMapping(ladder.KindGeneric),
			Overlay:      ov,
		}
	}
	return []param.Descriptor{
		generic("generic", overlay.Generic),
		generic("http", overlay.HTTP),
		generic("https", overlay.HTTPS),
		generic("ftp", overlay.FTP),
		generic("ws", overlay.WS),
		generic("wss", overlay.WSS),
		generic("ldap", overlay.LDAP),
		{
			Name:         "common",
			Kind:         ladder.KindCommon,
			FieldMapping: param.IdentityMapping(ladder.KindCommon),
		},
	}
}

var (
	defaultSetupOnce sync.Once
	defaultSetup     *Setup
)

// CurrentSetup returns the process-wide default Setup, building it (with
// every built-in identifier type registered) on first use.
func CurrentSetup() *Setup {
	defaultSetupOnce.Do(func() {
		defaultSetup = NewSetup()
		for _, d := range defaultDescriptors() {
			defaultSetup.Register(d)
		}
	})
	return defaultSetup
}

// Configure registers additional or replacement Parameterization
// Descriptors on the process-wide default Setup. It is the external
// interface a caller uses to add a custom identifier type, such as an
// application-specific URN scheme, without constructing its own Setup.
func Configure(descriptors ...param.Descriptor) {
	s := CurrentSetup()
	for _, d := range descriptors {
		s.Register(d)
	}
}
