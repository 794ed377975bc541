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

/* Encode a Node tree back into B-encoded bytes. Encoding is the mirror
 * image of decode.go: integers become i<num>e, byte strings become
 * <len>:<bytes>, lists become l(<value>)*e and dicts become d(<key><value>)*e
 * with keys emitted in ascending byte-wise order. Because decode.go already
 * normalizes dict entries into that order (§ orderPairs), and DictSet keeps
 * owned trees sorted on insert, Encode never needs to re-sort -- but it
 * does so anyway to keep the canonical-encode guarantee independent of how
 * a tree was assembled.
 */

package bencode

import (
	"bytes"
	"io"
	"sort"
	"strconv"
)

// Encode serializes n to canonical B-encoded bytes.
func (n Node) Encode() []byte {
	var buf bytes.Buffer
	// EncodeTo on a bytes.Buffer never fails.
	_ = n.EncodeTo(&buf)
	return buf.Bytes()
}

// EncodeTo writes the canonical B-encoding of n to w.
func (n Node) EncodeTo(w io.Writer) error {
	switch n.kind {
	case KindInt:
		return writeInt(w, n.i)
	case KindBytes:
		return writeBytes(w, n.b)
	case KindList:
		return n.encodeList(w)
	case KindDict:
		return n.encodeDict(w)
	default:
		return &ParseError{Kind: ErrCorruptData, Msg: "cannot encode a Node of unknown kind"}
	}
}

func writeInt(w io.Writer, v int64) error {
	buf := make([]byte, 0, 21)
	buf = append(buf, sigilInt)
	buf = strconv.AppendInt(buf, v, 10)
	buf = append(buf, sigilEnd)
	_, err := w.Write(buf)
	return err
}

func writeBytes(w io.Writer, b []byte) error {
	buf := make([]byte, 0, len(b)+12)
	buf = strconv.AppendInt(buf, int64(len(b)), 10)
	buf = append(buf, sigilColon)
	if _, err := w.Write(buf); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func (n Node) encodeList(w io.Writer) error {
	if _, err := w.Write([]byte{sigilList}); err != nil {
		return err
	}
	for _, item := range n.items {
		if err := item.EncodeTo(w); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{sigilEnd})
	return err
}

func (n Node) encodeDict(w io.Writer) error {
	if _, err := w.Write([]byte{sigilDict}); err != nil {
		return err
	}

	pairs := n.pairs
	if !sort.SliceIsSorted(pairs, func(i, j int) bool {
		return compareBytes(pairs[i].Key, pairs[j].Key) < 0
	}) {
		pairs = append([]DictEntry(nil), pairs...)
		sort.Slice(pairs, func(i, j int) bool {
			return compareBytes(pairs[i].Key, pairs[j].Key) < 0
		})
	}

	for _, e := range pairs {
		if err := writeBytes(w, e.Key); err != nil {
			return err
		}
		if err := e.Val.EncodeTo(w); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{sigilEnd})
	return err
}
