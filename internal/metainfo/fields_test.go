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
	"errors"
	"testing"

	"github.com/benclib/bencode/internal/bencode"
)

func TestRequireBytesMissingKey(t *testing.T) {
	dict := bencode.DictOf(bencode.Entry("a", bencode.NewInt(1)))
	_, err := requireBytes(dict, "b")
	var cerr *ConvertError
	if !errors.As(err, &cerr) || cerr.Kind != MissingKey || cerr.Key != "b" {
		t.Fatalf("expected MissingKey for 'b', got %v", err)
	}
}

func TestRequireBytesWrongType(t *testing.T) {
	dict := bencode.DictOf(bencode.Entry("a", bencode.NewInt(1)))
	_, err := requireBytes(dict, "a")
	var cerr *ConvertError
	if !errors.As(err, &cerr) || cerr.Kind != WrongType || cerr.Expected != "byte string" {
		t.Fatalf("expected WrongType for 'a', got %v", err)
	}
}

func TestRequireIntSucceeds(t *testing.T) {
	dict := bencode.DictOf(bencode.Entry("n", bencode.NewInt(42)))
	v, err := requireInt(dict, "n")
	if err != nil || v != 42 {
		t.Fatalf("unexpected result: %v, %v", v, err)
	}
}

func TestRequireUTF8StringRejectsInvalidUTF8(t *testing.T) {
	dict := bencode.DictOf(bencode.Entry("name", bencode.NewBytes([]byte{0xff, 0xfe})))
	_, err := requireUTF8String(dict, "name")
	var cerr *ConvertError
	if !errors.As(err, &cerr) || cerr.Kind != WrongType {
		t.Fatalf("expected WrongType for invalid UTF-8, got %v", err)
	}
}

func TestOptionalHelpersAbsorbAbsenceAndWrongType(t *testing.T) {
	dict := bencode.DictOf(bencode.Entry("n", bencode.NewInt(1)))
	if _, ok := optionalBytes(dict, "missing"); ok {
		t.Fatalf("expected ok=false for missing key")
	}
	if _, ok := optionalBytes(dict, "n"); ok {
		t.Fatalf("expected ok=false for wrong-type key")
	}
	if _, ok := optionalInt(dict, "missing"); ok {
		t.Fatalf("expected ok=false for missing key")
	}
	if _, ok := optionalUTF8String(dict, "missing"); ok {
		t.Fatalf("expected ok=false for missing key")
	}
}

func TestConvertErrorMessages(t *testing.T) {
	missing := &ConvertError{Kind: MissingKey, Key: "announce"}
	if missing.Error() == "" {
		t.Fatalf("expected non-empty message")
	}
	wrong := &ConvertError{Kind: WrongType, Key: "length", Expected: "integer"}
	if wrong.Error() == "" {
		t.Fatalf("expected non-empty message")
	}
}
