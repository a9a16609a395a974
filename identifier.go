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

// Package rid parses, normalizes and recomposes URIs and IRIs per RFC
// 3986 and RFC 3987, computing every normalized and converted rendering
// of an identifier in a single pass instead of one normal form at a time.
package rid

import (
	"github.com/corvid-systems/rid/internal/grammar"
	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/internal/resolve"
	"github.com/corvid-systems/rid/param"
)

// Identifier is a successfully parsed URI or IRI, holding the nine-stage
// ladder.Snapshot computed for every grammar field during the parse.
type Identifier struct {
	binding *param.Binding
	raw     string
	result  *grammar.Result
}

// Abs reports whether the identifier is absolute (carries a scheme).
func (id *Identifier) Abs() bool { return id.result.Has["scheme"] }

// Kind reports whether the identifier was parsed under the Generic or
// Common grammar kind.
func (id *Identifier) Kind() ladder.Kind { return id.result.Kind }

// String returns the identifier's protocol-based-normalized form, the
// stage this module treats as "the" normalized output.
func (id *Identifier) String() string {
	return id.result.Output[ladder.Normalized]
}

// OutputByIndice returns the identifier's whole-text rendering at ladder
// stage idx.
func (id *Identifier) OutputByIndice(idx ladder.Indice) (string, error) {
	if !idx.Valid() {
		return "", newError(IndiceUnknown, idx.String(), nil)
	}
	return id.result.Output[idx], nil
}

// OutputByType is OutputByIndice addressed by stage name, e.g.
// "CASE_NORMALIZED".
func (id *Identifier) OutputByType(name string) (string, error) {
	idx, err := ladder.ParseIndice(name)
	if err != nil {
		return "", newError(IndiceUnknown, name, err)
	}
	return id.OutputByIndice(idx)
}

// StructByIndice materializes a ladder.Record holding every field's value
// at ladder stage idx, in the identifier's Kind's record shape.
func (id *Identifier) StructByIndice(idx ladder.Indice) (ladder.Record, error) {
	if !idx.Valid() {
		return nil, newError(IndiceUnknown, idx.String(), nil)
	}
	rec := id.binding.NewRecord(false)
	for field, snap := range id.result.Fields {
		// SetField errors mean the grammar reduced a field the binding's
		// Kind does not define, which Bind's field-mapping validation
		// already rules out for every built-in descriptor.
		_ = rec.SetField(field, snap[idx])
	}
	for _, seg := range id.result.Segments {
		rec.AppendSegment(seg[idx])
	}
	if out, ok := id.result.Fields["output"]; ok {
		_ = rec.SetField("output", out[idx])
	} else {
		_ = rec.SetField("output", id.result.Output[idx])
	}
	return rec, nil
}

// StructByType is StructByIndice addressed by stage name.
func (id *Identifier) StructByType(name string) (ladder.Record, error) {
	idx, err := ladder.ParseIndice(name)
	if err != nil {
		return nil, newError(IndiceUnknown, name, err)
	}
	return id.StructByIndice(idx)
}

// Field returns the raw-stage value of one grammar field and whether it
// was present in the parse, the accessor convention the teacher's
// generated accessors used for every optional component.
func (id *Identifier) Field(name string) (string, bool) {
	snap, ok := id.result.Fields[name]
	if !ok {
		return "", false
	}
	return snap[ladder.Raw], true
}

// Scheme returns the identifier's scheme, if it has one.
func (id *Identifier) Scheme() (string, bool) { return id.Field("scheme") }

// Host returns the identifier's host, if it has one (Generic kind only).
func (id *Identifier) Host() (string, bool) { return id.Field("host") }

// Path returns the identifier's path (Generic kind only; "" with ok=true
// is a valid empty path).
func (id *Identifier) Path() (string, bool) { return id.Field("path") }

// Fragment returns the identifier's fragment, if it has one.
func (id *Identifier) Fragment() (string, bool) { return id.Field("fragment") }

// Equal reports whether id and other compare equal under protocol-based
// normalization, the module's definition of identifier equivalence.
func (id *Identifier) Equal(other *Identifier) bool {
	if other == nil {
		return false
	}
	return id.String() == other.String()
}

// ResolveReference implements RFC 3986, Section 5.3 reference resolution:
// ref is resolved against id, which must be absolute. ref is parsed under
// the same binding as id.
func (id *Identifier) ResolveReference(ref string) (*Identifier, error) {
	if id.Kind() != ladder.KindGeneric {
		return nil, newError(WrongKind, "ResolveReference requires a Generic-kind identifier", nil)
	}
	refResult, err := grammar.ParseReference(id.binding, ref, false)
	if err != nil {
		return nil, wrapGrammarError(err)
	}
	resolved, err := resolve.Resolve(id.binding, id.result, id.raw, refResult, ref, false)
	if err != nil {
		return nil, wrapGrammarError(err)
	}
	return &Identifier{binding: id.binding, raw: ref, result: resolved}, nil
}
