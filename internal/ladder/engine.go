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

package ladder

// Snapshot holds one value per ladder stage, produced by a single grammar
// reduction (a terminal read or a rule's Reduce call).
type Snapshot [NumStages]string

// Leaf builds the starting Snapshot for a single matched character or
// literal token: every stage starts out equal to the raw text, since a
// terminal has nothing yet to normalize or convert.
func Leaf(raw string) Snapshot {
	var s Snapshot
	for i := range s {
		s[i] = raw
	}
	return s
}

// normalizeOrder lists the chained normalize stages in application order.
var normalizeOrder = [...]Indice{
	CaseNormalized,
	CharacterNormalized,
	PercentEncodingNormalized,
	PathSegmentNormalized,
	SchemeBasedNormalized,
	ProtocolBasedNormalized,
}

// convertOrder lists the independent convert stages.
var convertOrder = [...]Indice{URIConverted, IRIConverted}

// Engine holds the per-stage normalizer and converter tables a
// Parameterization binding assembles from its grammar's built-in defaults
// composed with any scheme Overlay. A single Engine is reused across every
// reduction performed while parsing one identifier.
type Engine struct {
	Normalize [NumStages]*NormalizeTable
	Convert   [NumStages]*ConvertTable

	// ConversionErrors accumulates non-fatal convert failures encountered
	// by every Reduce call made on this Engine, keyed by criteria (a later
	// failure for the same criteria replaces an earlier one). It is never
	// cleared, and no other package in this module reads it.
	ConversionErrors map[string]error
}

// NewEngine returns an Engine with an empty table at every stage. Callers
// populate Normalize[idx] and Convert[idx] for the stages their grammar
// and overlay actually use; an unpopulated table behaves as pure identity.
func NewEngine() *Engine {
	e := &Engine{ConversionErrors: make(map[string]error)}
	for _, idx := range normalizeOrder {
		e.Normalize[idx] = NewTable[NormalizeFunc]()
	}
	for _, idx := range convertOrder {
		e.Convert[idx] = NewTable[ConvertFunc]()
	}
	return e
}

// Reduce combines the Snapshots of a rule's matched children into the
// Snapshot for the rule itself, identified by criteria (the rule's
// left-hand-side name, e.g. "host" or "segment"). The nine columns are
// computed in three passes, per reduction:
//
//  1. Concatenate: column Raw is the concatenation of every child's Raw
//     column, in order. This is the only column every reduction fills
//     unconditionally.
//  2. Normalize (chained, stages 3-8): each stage in turn takes the
//     previous stage's output as input (stage CaseNormalized starts from
//     Raw) and applies criteria's registered NormalizeFunc, if any;
//     absent a registration the stage takes the children's concatenated
//     value at that stage when it differs from Raw, and otherwise passes
//     the previous stage's value through unchanged.
//  3. Convert (independent, stages 1-2): each of URIConverted and
//     IRIConverted is derived directly from Raw by criteria's registered
//     ConvertFunc, if any, independently of the normalize chain and of
//     each other; absent a registration, or when the ConvertFunc fails,
//     the stage is the children's concatenated value at that stage.
func (e *Engine) Reduce(criteria string, children ...Snapshot) Snapshot {
	var out Snapshot

	for _, c := range children {
		out[Raw] += c[Raw]
	}

	// concatChildren joins every child's value at stage idx, the value
	// this reduction inherits bottom-up when it has no transform of its
	// own registered for criteria at that stage.
	concatChildren := func(idx Indice) string {
		var s string
		for _, c := range children {
			s += c[idx]
		}
		return s
	}

	// childVaries reports whether the children's own column idx already
	// diverges from their Raw column, meaning at least one child carries
	// a real per-stage value this reduction should inherit rather than
	// discard. A reduction over plain literal text (a leaf, or a run of
	// undifferentiated literal segments) always reports false here, so
	// such reductions fall through to chaining their own criteria's
	// transforms instead.
	childVaries := func(idx Indice) (string, bool) {
		v := concatChildren(idx)
		return v, v != out[Raw]
	}

	prev := out[Raw]
	for _, idx := range normalizeOrder {
		if fn, ok := e.Normalize[idx].Lookup(criteria); ok {
			prev = fn(prev)
		} else if v, varies := childVaries(idx); varies {
			prev = v
		}
		out[idx] = prev
	}

	for _, idx := range convertOrder {
		if fn, ok := e.Convert[idx].Lookup(criteria); ok {
			converted, err := fn(out[Raw])
			if err != nil {
				e.ConversionErrors[criteria] = err
				out[idx] = concatChildren(idx)
			} else {
				out[idx] = converted
			}
		} else {
			out[idx] = concatChildren(idx)
		}
	}

	return out
}

// ReduceLiteral is a convenience for reducing a single matched terminal
// run of text (no child Snapshots to concatenate) under criteria.
func (e *Engine) ReduceLiteral(criteria, raw string) Snapshot {
	return e.Reduce(criteria, Leaf(raw))
}

// ReduceWhole runs the same normalize/convert pipeline as Reduce, once,
// over the complete input string raw, under the empty criteria key. This
// key never occurs during an ordinary grammar reduction (every rule's
// left-hand-side name is non-empty), so it is reserved for this
// whole-input pass: the pre-parse normalization the grammar runtime
// applies to raw before tokenizing, distinct from the per-field
// normalization every subsequent reduction performs. A binding that
// leaves the "" criteria unregistered gets pipeline behavior identical to
// Raw passthrough, the same as any other criteria with no transform of
// its own.
func (e *Engine) ReduceWhole(raw string) Snapshot {
	return e.ReduceLiteral("", raw)
}

// Apply assigns every stage of snap to rec's field for field, by calling
// rec.SetField with the value held at the caller-chosen Indice. Callers
// needing every stage stored call this once per Indice; field-specific
// reductions during parsing normally only need the
// ProtocolBasedNormalized and Raw columns for grammar bookkeeping, with
// the full Snapshot retained by the caller for later
// StructByIndice/OutputByIndice lookups.
func Apply(rec Record, field string, idx Indice, snap Snapshot) error {
	return rec.SetField(field, snap[idx])
}
