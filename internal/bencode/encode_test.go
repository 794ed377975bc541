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

import "testing"

func TestEncodeScalars(t *testing.T) {
	if got := string(NewInt(7).Encode()); got != "i7e" {
		t.Fatalf("got %q, want i7e", got)
	}
	if got := string(NewInt(-7).Encode()); got != "i-7e" {
		t.Fatalf("got %q, want i-7e", got)
	}
	if got := string(NewBytes([]byte("spam")).Encode()); got != "4:spam" {
		t.Fatalf("got %q, want 4:spam", got)
	}
	if got := string(NewBytes(nil).Encode()); got != "0:" {
		t.Fatalf("got %q, want 0:", got)
	}
}

func TestEncodeList(t *testing.T) {
	l := ListOf(NewBytes([]byte("spam")), NewBytes([]byte("eggs")))
	if got := string(l.Encode()); got != "l4:spam4:eggse" {
		t.Fatalf("got %q, want l4:spam4:eggse", got)
	}
}

// TestEncodeDictSortsKeys exercises the canonical-encode rule from C4:
// dict entries are always emitted in ascending byte-wise key order, even
// if DictSet calls happened out of order.
func TestEncodeDictSortsKeys(t *testing.T) {
	d := NewDict()
	d.DictSet([]byte("zebra"), NewInt(1))
	d.DictSet([]byte("apple"), NewInt(2))
	want := "d5:applei2e5:zebrai1ee"
	if got := string(d.Encode()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestRoundTripProperty covers property 1 (round-trip) and scenario S1:
// any buffer that decodes under EnforceSortedKeys=true re-encodes to the
// exact same bytes.
func TestRoundTripProperty(t *testing.T) {
	cases := []string{
		"d12:lucky_numberi7ee",
		"le",
		"d3:bari1e3:fooi2ee",
		"d1:ad1:k1:ve1:zl1:aee",
		"i0e",
		"i-42e",
		"0:",
		"5:hello",
		"d4:infod4:name5:filesee",
	}
	for _, in := range cases {
		n, err := Decode([]byte(in), DefaultDecodeOptions())
		if err != nil {
			t.Fatalf("Decode(%q) unexpected error: %v", in, err)
		}
		if got := string(n.Encode()); got != in {
			t.Fatalf("round-trip mismatch: Decode(%q).Encode() = %q", in, got)
		}
	}
}

// TestCanonicalEncodeProperty covers property 2: encoding then decoding an
// owned tree must produce a tree equal to the original, modulo dict key
// ordering (which is already canonicalized by DictSet).
func TestCanonicalEncodeProperty(t *testing.T) {
	built := DictOf(
		Entry("lucky_number", NewInt(7)),
		Entry("name", NewBytes([]byte("spam"))),
		Entry("values", ListOf(NewInt(1), NewInt(2), NewInt(3))),
	)

	encoded := built.Encode()
	decoded, err := Decode(encoded, DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}

	n, ok := decoded.DictGet([]byte("lucky_number"))
	if v, _ := n.Int(); !ok || v != 7 {
		t.Fatalf("lucky_number mismatch")
	}
	n, ok = decoded.DictGet([]byte("name"))
	if b, _ := n.Bytes(); !ok || string(b) != "spam" {
		t.Fatalf("name mismatch")
	}
	n, ok = decoded.DictGet([]byte("values"))
	items, _ := n.List()
	if !ok || len(items) != 3 {
		t.Fatalf("values mismatch: %v", items)
	}
}

func TestEncodeNestedStructure(t *testing.T) {
	root := DictOf(Entry("info", DictOf(
		Entry("name", NewBytes([]byte("file"))),
		Entry("length", NewInt(0)),
	)))
	want := "d4:infod6:lengthi0e4:name4:fileee"
	if got := string(root.Encode()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
