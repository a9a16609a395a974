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

// Package grammar implements the hand-written recursive-descent parser
// this module uses in place of a true Earley/SLIF grammar engine,
// generalizing the teacher's single-output-buffer iriParser into a runtime
// that produces a nine-stage ladder.Snapshot per grammar reduction instead
// of writing into one output buffer.
package grammar

import "github.com/corvid-systems/rid/internal/ladder"

// Result is everything one parse of an identifier's text produces: a
// ladder.Snapshot for every scalar field the grammar populated, an ordered
// list of Snapshots for the repeated "segments" field (Generic kind only),
// and the whole-identifier Output snapshot.
type Result struct {
	Kind     ladder.Kind
	Fields   map[string]ladder.Snapshot
	Has      map[string]bool
	Segments []ladder.Snapshot
	Output   ladder.Snapshot
}

func newResult(kind ladder.Kind) *Result {
	return &Result{
		Kind:   kind,
		Fields: make(map[string]ladder.Snapshot),
		Has:    make(map[string]bool),
	}
}

func (r *Result) set(field string, snap ladder.Snapshot) {
	r.Fields[field] = snap
	r.Has[field] = true
}

// StructFields returns field/snapshot pairs for every field mapped by the
// binding's field mapping, translating grammar criteria keys already
// applied (callers of grammar.Parse work in field-name space throughout,
// since this module binds every built-in descriptor with the identity
// mapping).
func (r *Result) StructFields() map[string]ladder.Snapshot { return r.Fields }
