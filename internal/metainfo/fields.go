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

import (
	"unicode/utf8"

	"github.com/benclib/bencode/internal/bencode"
)

// requireBytes fetches key from dict as a byte string. It fails with
// MissingKey if the key is absent, WrongType if present but not a byte
// string.
func requireBytes(dict bencode.Node, key string) ([]byte, error) {
	v, ok := dict.DictGet([]byte(key))
	if !ok {
		return nil, &ConvertError{Kind: MissingKey, Key: key}
	}
	b, ok := v.Bytes()
	if !ok {
		return nil, &ConvertError{Kind: WrongType, Key: key, Expected: "byte string"}
	}
	return b, nil
}

// requireInt fetches key from dict as an integer.
func requireInt(dict bencode.Node, key string) (int64, error) {
	v, ok := dict.DictGet([]byte(key))
	if !ok {
		return 0, &ConvertError{Kind: MissingKey, Key: key}
	}
	i, ok := v.Int()
	if !ok {
		return 0, &ConvertError{Kind: WrongType, Key: key, Expected: "integer"}
	}
	return i, nil
}

// requireUTF8String fetches key as a byte string and requires it to be
// valid UTF-8. This is used for dict fields the format treats as
// mandatory text, such as name; path components are list items and are
// checked for UTF-8 by parseMultiFile itself.
func requireUTF8String(dict bencode.Node, key string) (string, error) {
	b, err := requireBytes(dict, key)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &ConvertError{Kind: WrongType, Key: key, Expected: "UTF-8 string"}
	}
	return string(b), nil
}

// optionalBytes fetches key as a byte string, returning ok=false if the
// key is absent or of the wrong type rather than an error: optional
// fields are advisory and never fail the parse.
func optionalBytes(dict bencode.Node, key string) ([]byte, bool) {
	v, ok := dict.DictGet([]byte(key))
	if !ok {
		return nil, false
	}
	return v.Bytes()
}

// optionalInt fetches key as an integer, returning ok=false if absent or
// of the wrong type.
func optionalInt(dict bencode.Node, key string) (int64, bool) {
	v, ok := dict.DictGet([]byte(key))
	if !ok {
		return 0, false
	}
	return v.Int()
}

// optionalUTF8String fetches key as a byte string and treats invalid
// UTF-8 the same as absence: per the advisory-field contract, comment,
// created by and encoding are dropped rather than rejected when they
// don't decode as text.
func optionalUTF8String(dict bencode.Node, key string) (string, bool) {
	b, ok := optionalBytes(dict, key)
	if !ok || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}
