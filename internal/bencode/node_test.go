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

func TestOwnedListMutation(t *testing.T) {
	l := NewList()
	if !l.ListPush(NewInt(1)) {
		t.Fatalf("ListPush should succeed on an owned list")
	}
	if !l.ListPush(NewInt(2)) {
		t.Fatalf("ListPush should succeed on an owned list")
	}
	if !l.ListReplace(0, NewInt(9)) {
		t.Fatalf("ListReplace should succeed")
	}
	items, _ := l.List()
	if v, _ := items[0].Int(); v != 9 {
		t.Fatalf("expected replaced value 9, got %d", v)
	}
	if !l.ListRemove(1) {
		t.Fatalf("ListRemove should succeed")
	}
	items, _ = l.List()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after remove, got %d", len(items))
	}
}

func TestOwnedDictMutation(t *testing.T) {
	d := NewDict()
	d.DictSet([]byte("b"), NewInt(2))
	d.DictSet([]byte("a"), NewInt(1))
	d.DictSet([]byte("a"), NewInt(100)) // overwrite

	entries, _ := d.DictEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if string(entries[0].Key) != "a" || string(entries[1].Key) != "b" {
		t.Fatalf("expected ascending order, got %q, %q", entries[0].Key, entries[1].Key)
	}
	v, _ := entries[0].Val.Int()
	if v != 100 {
		t.Fatalf("expected overwritten value 100, got %d", v)
	}

	if !d.DictRemove([]byte("b")) {
		t.Fatalf("DictRemove should succeed")
	}
	if _, ok := d.DictGet([]byte("b")); ok {
		t.Fatalf("expected key 'b' to be gone")
	}
}

// TestBorrowedNodesRejectMutation confirms the write surface is only
// available on owned trees, never on nodes produced by Decode.
func TestBorrowedNodesRejectMutation(t *testing.T) {
	n, err := Decode([]byte("d3:fooi1ee"), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Owned() {
		t.Fatalf("decoded node should not be owned")
	}
	if n.DictSet([]byte("bar"), NewInt(2)) {
		t.Fatalf("DictSet should fail on a borrowed node")
	}

	l, err := Decode([]byte("l1:ae"), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ListPush(NewInt(1)) {
		t.Fatalf("ListPush should fail on a borrowed node")
	}
}

func TestDictGetBinarySearch(t *testing.T) {
	d := DictOf(
		Entry("a", NewInt(1)),
		Entry("m", NewInt(2)),
		Entry("z", NewInt(3)),
	)
	for _, key := range []string{"a", "m", "z"} {
		if _, ok := d.DictGet([]byte(key)); !ok {
			t.Fatalf("expected key %q to be present", key)
		}
	}
	if _, ok := d.DictGet([]byte("missing")); ok {
		t.Fatalf("expected key 'missing' to be absent")
	}
}

// TestCloneProducesIndependentOwnedTree confirms that Clone is how a
// borrowed tree gains write access.
func TestCloneProducesIndependentOwnedTree(t *testing.T) {
	n, err := Decode([]byte("d3:fooi1ee"), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	owned := n.Clone()
	if !owned.Owned() {
		t.Fatalf("clone should be owned")
	}
	if !owned.DictSet([]byte("bar"), NewInt(2)) {
		t.Fatalf("DictSet should succeed on a cloned tree")
	}
	if _, ok := n.DictGet([]byte("bar")); ok {
		t.Fatalf("mutating the clone should not affect the original")
	}
	if _, ok := owned.DictGet([]byte("bar")); !ok {
		t.Fatalf("expected 'bar' in the clone")
	}
}

func TestKindMismatchReturnsFalse(t *testing.T) {
	n := NewInt(1)
	if _, ok := n.Bytes(); ok {
		t.Fatalf("Bytes() should fail on an int node")
	}
	if _, ok := n.List(); ok {
		t.Fatalf("List() should fail on an int node")
	}
	if _, ok := n.DictEntries(); ok {
		t.Fatalf("DictEntries() should fail on an int node")
	}
}
