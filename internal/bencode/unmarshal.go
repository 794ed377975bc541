/*
 * Copyright 2024 Eduardo Antunes dos Santos Vieira
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 */

/* Unmarshal is sugar over the Node access surface: it turns a Dict node
 * into a plain Go value (map[string]any, []any, string, int64) and hands
 * that to mapstructure, the same library the rest of this project's
 * ancestry leans on for mapping untyped B-encoded dictionaries onto typed
 * Go structs. It exists for callers who want a quick typed snapshot of a
 * dict without writing field-by-field DictGet calls. Package metainfo
 * does not use it anywhere, including for its optional fields: every
 * field it reads, required or advisory, needs the precise
 * MissingKey/WrongType/absent-vs-wrong-type distinctions its own
 * fields.go helpers draw, which mapstructure's zero-value-on-absence
 * decoding can't give it. The only caller is cmd/bencat's
 * "inspect --struct" dump.
 */

package bencode

import "github.com/mitchellh/mapstructure"

// ToGoValue converts n into a plain Go value built from the standard
// unstructured container types: map[string]any for dicts, []any for
// lists, int64 for integers and string for byte strings (byte strings
// that are not valid UTF-8 become Go strings holding the raw bytes, since
// Go strings are just byte sequences).
func (n Node) ToGoValue() any {
	switch n.kind {
	case KindInt:
		return n.i
	case KindBytes:
		return string(n.b)
	case KindList:
		out := make([]any, len(n.items))
		for i, it := range n.items {
			out[i] = it.ToGoValue()
		}
		return out
	case KindDict:
		out := make(map[string]any, len(n.pairs))
		for _, e := range n.pairs {
			out[string(e.Key)] = e.Val.ToGoValue()
		}
		return out
	default:
		return nil
	}
}

// Unmarshal decodes the dict node n into the Go struct pointed to by out,
// using `mapstructure` struct tags the same way the rest of the project's
// lineage does (e.g. `mapstructure:"piece length"`). It returns a
// *ParseError wrapping mapstructure's failure, so callers can use the
// same error-handling pattern as the rest of the package.
func Unmarshal(n Node, out any) error {
	if n.Kind() != KindDict {
		return &ParseError{Kind: ErrCorruptData, Msg: "Unmarshal requires a dict node"}
	}
	if err := mapstructure.Decode(n.ToGoValue(), out); err != nil {
		return NewCorruptDataError("could not map bencoded dict onto target struct", err)
	}
	return nil
}
