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

import (
	"regexp"
	"sync"

	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/internal/normalize"
)

// Binding is the validated, ready-to-parse result of binding a
// Descriptor: a grammar kind, the unwrapped symbol-to-field mapping, and
// the composed ladder engine the grammar runtime calls Reduce on. The
// grammar runtime reduces under fixed criteria names equal to the record
// field names and does not consult FieldBySym, so a mapping other than
// IdentityMapping does not change how an identifier is parsed.
type Binding struct {
	Name         string
	Kind         ladder.Kind
	FieldBySym   map[string]string
	Engine       *ladder.Engine
	DefaultPort  string
	Secure       bool
	RegNameIsDNS bool

	Whoami     string
	BNF        string
	Reserved   *regexp.Regexp
	Unreserved *regexp.Regexp
	PctEncoded string
}

// NewRecord returns a fresh, empty Record of the Binding's Kind.
func (b *Binding) NewRecord(uriCompat bool) ladder.Record {
	if b.Kind == ladder.KindGeneric {
		return ladder.NewGenericRecord(uriCompat)
	}
	return &ladder.CommonRecord{}
}

// Bind validates a Descriptor's field mapping and assembles its Binding,
// composing the built-in normalizer/converter tables for the descriptor's
// Kind with its Overlay, if any. It returns a *BindingInvalid error when
// the descriptor fails a sanity check.
func Bind(d Descriptor) (*Binding, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	unreserved := d.Unreserved
	if unreserved == nil {
		unreserved = DefaultUnreserved
	}
	reserved := d.Reserved
	if reserved == nil {
		reserved = DefaultReserved
	}
	pctEncoded := d.PctEncoded
	if pctEncoded == "" {
		pctEncoded = DefaultPctEncoded
	}

	engine := normalize.BuiltinEngine(d.Kind, unreserved, pctEncoded)
	defaultPort, secure, regNameIsDNS := "", false, d.Kind == ladder.KindGeneric
	if d.Overlay != nil {
		engine = d.Overlay.Apply(engine)
		defaultPort = d.Overlay.DefaultPort()
		secure = d.Overlay.Secure()
		regNameIsDNS = d.Overlay.RegNameIsDomainName()
	}

	return &Binding{
		Name:         d.Name,
		Kind:         d.Kind,
		FieldBySym:   d.fieldBySymbol(),
		Engine:       engine,
		DefaultPort:  defaultPort,
		Secure:       secure,
		RegNameIsDNS: regNameIsDNS,
		Whoami:       d.Whoami,
		BNF:          d.BNF,
		Reserved:     reserved,
		Unreserved:   unreserved,
		PctEncoded:   pctEncoded,
	}, nil
}

// bindCache serializes and memoizes Bind calls keyed by descriptor name, so
// concurrent first uses of the same identifier type bind exactly once.
type bindCache struct {
	mu    sync.Mutex
	once  map[string]*sync.Once
	value map[string]*Binding
	err   map[string]error
}

func newBindCache() *bindCache {
	return &bindCache{
		once:  make(map[string]*sync.Once),
		value: make(map[string]*Binding),
		err:   make(map[string]error),
	}
}

// BindCached is like Bind but binds d exactly once per distinct d.Name,
// across however many goroutines race to request it first.
func (c *bindCache) BindCached(d Descriptor) (*Binding, error) {
	c.mu.Lock()
	once, ok := c.once[d.Name]
	if !ok {
		once = &sync.Once{}
		c.once[d.Name] = once
	}
	c.mu.Unlock()

	once.Do(func() {
		b, err := Bind(d)
		c.mu.Lock()
		c.value[d.Name], c.err[d.Name] = b, err
		c.mu.Unlock()
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value[d.Name], c.err[d.Name]
}

// DefaultBindCache is a process-wide bindCache. Setup does not use it;
// each Setup keeps its own map of bindings.
var DefaultBindCache = newBindCache()
