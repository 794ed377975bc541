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

package metainfo

import "fmt"

// ConvertErrorKind classifies why a single dictionary field could not be
// read into the shape a metainfo field requires. It is the disjoint
// counterpart to bencode.ParseErrorKind: ParseError is about bytes not
// being well-formed bencode at all, ConvertError is about well-formed
// bencode not matching the schema a .torrent file is expected to follow.
type ConvertErrorKind int

const (
	// MissingKey means the dictionary has no entry under the given key.
	MissingKey ConvertErrorKind = iota
	// WrongType means the entry exists but is not the expected Kind.
	WrongType
)

// ConvertError reports a single failed field extraction while assembling
// an InfoDictionary or MetainfoFile from a decoded bencode tree. Parse
// never returns a ConvertError directly: it folds every ConvertError into
// a bencode.ParseError of kind CorruptData or MissingData, so that
// nothing above the metainfo package ever has to reason about codec-level
// detail. ConvertError stays exported because the field-extraction
// helpers it documents are reused and tested on their own.
type ConvertError struct {
	Kind     ConvertErrorKind
	Key      string
	Expected string // only set for WrongType
}

func (e *ConvertError) Error() string {
	if e.Kind == MissingKey {
		return fmt.Sprintf("metainfo: missing key %q", e.Key)
	}
	return fmt.Sprintf("metainfo: key %q is not a %s", e.Key, e.Expected)
}
