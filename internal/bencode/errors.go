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

package bencode

import "fmt"

// ParseErrorKind classifies why Decode (or, reused by package metainfo, a
// higher-level validation pass) rejected an input.
type ParseErrorKind int

const (
	ErrBytesEmpty ParseErrorKind = iota
	ErrInvalidByte
	ErrInvalidIntNoDelimiter
	ErrInvalidIntNegativeZero
	ErrInvalidIntZeroPadding
	ErrInvalidIntParseError
	ErrInvalidKeyOrdering
	ErrInvalidKeyDuplicates
	ErrInvalidLengthOverflow
	ErrInvalidRecursionLimitExceeded
	ErrTrailingBytes
	ErrCorruptData
	ErrMissingData
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrBytesEmpty:
		return "bytes empty"
	case ErrInvalidByte:
		return "invalid byte"
	case ErrInvalidIntNoDelimiter:
		return "integer missing 'e' delimiter"
	case ErrInvalidIntNegativeZero:
		return "integer is negative zero"
	case ErrInvalidIntZeroPadding:
		return "integer has leading zero"
	case ErrInvalidIntParseError:
		return "integer could not be parsed"
	case ErrInvalidKeyOrdering:
		return "dict keys out of order"
	case ErrInvalidKeyDuplicates:
		return "dict has duplicate key"
	case ErrInvalidLengthOverflow:
		return "byte string length exceeds remaining input"
	case ErrInvalidRecursionLimitExceeded:
		return "recursion limit exceeded"
	case ErrTrailingBytes:
		return "trailing bytes after value"
	case ErrCorruptData:
		return "corrupt data"
	case ErrMissingData:
		return "missing data"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by Decode on malformed input, and reused by
// package metainfo to report CorruptData/MissingData failures (those two
// kinds never carry a byte offset, per the metainfo layer's contract of
// not leaking raw decoder positions to its callers).
type ParseError struct {
	Kind ParseErrorKind
	Pos  int    // byte offset of the failure; meaningless for CorruptData/MissingData
	Key  []byte // offending dict key, set for key-ordering/duplicate errors
	Msg  string // human context, set for CorruptData/MissingData
	Err  error  // wrapped cause, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrCorruptData, ErrMissingData:
		if e.Msg != "" {
			return fmt.Sprintf("bencode: %s: %s", e.Kind, e.Msg)
		}
		return fmt.Sprintf("bencode: %s", e.Kind)
	case ErrInvalidKeyOrdering, ErrInvalidKeyDuplicates:
		return fmt.Sprintf("bencode: %s at offset %d (key %q)", e.Kind, e.Pos, e.Key)
	default:
		return fmt.Sprintf("bencode: %s at offset %d", e.Kind, e.Pos)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

func newErr(kind ParseErrorKind, pos int) *ParseError {
	return &ParseError{Kind: kind, Pos: pos}
}

func newKeyErr(kind ParseErrorKind, pos int, key []byte) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Key: key}
}

// NewCorruptDataError builds a CorruptData ParseError, for use by package
// metainfo when it cannot make sense of otherwise well-formed bencode.
func NewCorruptDataError(msg string, cause error) *ParseError {
	return &ParseError{Kind: ErrCorruptData, Msg: msg, Err: cause}
}

// NewMissingDataError builds a MissingData ParseError, for use by package
// metainfo when a required field is absent or of the wrong shape.
func NewMissingDataError(field string) *ParseError {
	return &ParseError{Kind: ErrMissingData, Msg: field}
}
