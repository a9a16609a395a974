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

// Package ladder implements the nine-stage parallel output computation
// described by the ladder snapshot: a fixed-width array of component
// records, each holding a progressively normalized or converted rendering
// of the same parsed identifier.
package ladder

import "fmt"

// Indice identifies one of the nine ladder stages. The numeric values are
// stable across implementations.
type Indice int

const (
	Raw Indice = iota
	URIConverted
	IRIConverted
	CaseNormalized
	CharacterNormalized
	PercentEncodingNormalized
	PathSegmentNormalized
	SchemeBasedNormalized
	ProtocolBasedNormalized

	// NumStages is the fixed width of a ladder snapshot.
	NumStages = 9
)

var stageNames = [NumStages]string{
	Raw:                       "RAW",
	URIConverted:              "URI_CONVERTED",
	IRIConverted:              "IRI_CONVERTED",
	CaseNormalized:            "CASE_NORMALIZED",
	CharacterNormalized:       "CHARACTER_NORMALIZED",
	PercentEncodingNormalized: "PERCENT_ENCODING_NORMALIZED",
	PathSegmentNormalized:     "PATH_SEGMENT_NORMALIZED",
	SchemeBasedNormalized:     "SCHEME_BASED_NORMALIZED",
	ProtocolBasedNormalized:   "PROTOCOL_BASED_NORMALIZED",
}

// String returns the canonical stage name used by output_by_type/struct_by_type.
func (i Indice) String() string {
	if i < 0 || int(i) >= NumStages {
		return fmt.Sprintf("Indice(%d)", int(i))
	}
	return stageNames[i]
}

// Valid reports whether i is one of the nine defined stage indices.
func (i Indice) Valid() bool {
	return i >= 0 && int(i) < NumStages
}

// ErrUnknownIndice is returned by ParseIndice for an unrecognized stage name.
type ErrUnknownIndice struct {
	Name string
}

func (e *ErrUnknownIndice) Error() string {
	return fmt.Sprintf("unknown ladder stage name %q", e.Name)
}

// ParseIndice resolves a stage name (e.g. "RAW", "PROTOCOL_BASED_NORMALIZED")
// to its Indice, implementing the lookup half of output_by_type/struct_by_type.
func ParseIndice(name string) (Indice, error) {
	for i, n := range stageNames {
		if n == name {
			return Indice(i), nil
		}
	}
	return -1, &ErrUnknownIndice{Name: name}
}

// Normalized is the stage index exposed to external callers as "the"
// normalized output.
const Normalized = ProtocolBasedNormalized
