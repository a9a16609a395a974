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

import "strings"

// dotSegmentReducer accumulates the output segments of RFC 3986, Section
// 5.2.4's remove_dot_segments algorithm as it consumes an input path
// front-to-back.
type dotSegmentReducer struct {
	output []string
}

func (r *dotSegmentReducer) last() (string, bool) {
	if len(r.output) == 0 {
		return "", false
	}
	return r.output[len(r.output)-1], true
}

func (r *dotSegmentReducer) dropLast() {
	if len(r.output) > 0 {
		r.output = r.output[:len(r.output)-1]
	}
}

func (r *dotSegmentReducer) push(segment string) {
	r.output = append(r.output, segment)
}

func (r *dotSegmentReducer) String() string {
	return strings.Join(r.output, "")
}

// reduceDotPrefix applies whichever of rules 2A-2D matches the front of
// in, mutating r.output per rule 2C's single-segment backtrack. ok is
// false when none of 2A-2D matched, meaning the caller should fall
// through to rule 2E via takeLeadingSegment.
func (r *dotSegmentReducer) reduceDotPrefix(in string) (rest string, ok bool) {
	switch {
	case strings.HasPrefix(in, "../"):
		return in[3:], true

	case strings.HasPrefix(in, "./"):
		return in[2:], true

	case strings.HasPrefix(in, "/./"):
		return "/" + in[3:], true

	case in == "/.":
		return "/", true

	case strings.HasPrefix(in, "/../"), in == "/..":
		rest = "/"
		if len(in) > len("/..") {
			rest += in[4:]
		}
		if last, ok := r.last(); ok {
			r.dropLast()
			if len(r.output) == 0 && !strings.HasPrefix(last, "/") {
				rest = strings.TrimPrefix(rest, "/")
			}
		}
		return rest, true

	case in == ".", in == "..":
		return "", true

	default:
		return in, false
	}
}

// takeLeadingSegment implements rule 2E: it moves the first path segment
// of in, including a leading slash if present, onto r's output, and
// returns what remains of in.
func (r *dotSegmentReducer) takeLeadingSegment(in string) (rest string) {
	slash := strings.IndexByte(in, '/')
	switch {
	case slash == 0:
		next := strings.IndexByte(in[1:], '/')
		if next == -1 {
			r.push(in)
			return ""
		}
		r.push(in[:next+1])
		return in[next+1:]

	case slash == -1:
		r.push(in)
		return ""

	default:
		r.push(in[:slash])
		return in[slash:]
	}
}

// RemoveDotSegments implements the RFC 3986, Section 5.2.4 algorithm,
// resolving "." and ".." segments out of a path. It is exported so the
// reference resolver can reuse it directly for the merge step of RFC
// 3986, Section 5.3's Transform.
func RemoveDotSegments(path string) string {
	r := &dotSegmentReducer{}
	for in := path; len(in) > 0; {
		if rest, ok := r.reduceDotPrefix(in); ok {
			in = rest
			continue
		}
		in = r.takeLeadingSegment(in)
	}
	return r.String()
}

// pathSegmentNormalize is the PathSegmentNormalized-stage rule for the
// "path" field.
func pathSegmentNormalize(value string) string { return RemoveDotSegments(value) }
