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

/* The BitTorrent protocol makes use of a small data markup language called
 * 'bencoding' by the official spec. Here, as in the original, we call it
 * B-encoding. It determines a standard text representation for strings,
 * integers, lists and dictionaries. In a nutshell:
 * - Strings => <length>:<text>
 * - Integers => i<num>e
 * - Lists => l(<value>)*e
 * - Dicts => d(<key><value>)*e
 * Dictionary keys must be byte strings, all numbers must be represented in
 * base 10 and aren't supposed to be 0-prefixed.
 *
 * This file implements a recursive-descent decoder directly over a byte
 * slice: every Bytes node it produces is a sub-slice of that same buffer,
 * never copied, which is what makes the info-hash computation in package
 * metainfo cheap and why the decoded tree must not outlive the buffer's
 * mutation (the buffer itself, not the tree, is the only scoped resource).
 */

package bencode

import "strconv"

// DecodeOptions tunes the decoder's tolerance for input that deviates from
// strict canonical B-encoding.
type DecodeOptions struct {
	// EnforceSortedKeys rejects dict keys that are not strictly ascending
	// (byte-wise) and always rejects duplicate keys. Defaults to true;
	// some real-world torrents violate strict ordering, so callers that
	// need to tolerate them should set this to false explicitly.
	EnforceSortedKeys bool

	// MaxRecursionDepth bounds how deeply lists and dicts may nest.
	// Exceeding it fails with ErrInvalidRecursionLimitExceeded.
	MaxRecursionDepth uint32

	// AllowTrailingBytes permits bytes to remain in the input after the
	// outermost value has been parsed. Defaults to false.
	AllowTrailingBytes bool
}

// DefaultDecodeOptions returns the canonical, strict decode configuration:
// sorted keys enforced, a recursion depth of 50, and no trailing bytes.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{EnforceSortedKeys: true, MaxRecursionDepth: 50}
}

const (
	sigilInt   = 'i'
	sigilList  = 'l'
	sigilDict  = 'd'
	sigilEnd   = 'e'
	sigilColon = ':'
)

type decoder struct {
	data  []byte
	pos   int
	depth uint32
	opts  DecodeOptions
}

// Decode parses a single B-encoded value out of data under opts. The
// returned Node is borrowed: its Bytes payloads alias data directly.
func Decode(data []byte, opts DecodeOptions) (Node, error) {
	if len(data) == 0 {
		return Node{}, newErr(ErrBytesEmpty, 0)
	}

	d := &decoder{data: data, opts: opts}
	val, err := d.decodeValue()
	if err != nil {
		return Node{}, err
	}

	if d.pos < len(d.data) && !opts.AllowTrailingBytes {
		return Node{}, newErr(ErrTrailingBytes, d.pos)
	}
	return val, nil
}

func (d *decoder) atEnd() bool { return d.pos >= len(d.data) }

func (d *decoder) peek() (byte, bool) {
	if d.atEnd() {
		return 0, false
	}
	return d.data[d.pos], true
}

func (d *decoder) decodeValue() (Node, error) {
	c, ok := d.peek()
	if !ok {
		return Node{}, newErr(ErrInvalidByte, d.pos)
	}

	switch c {
	case sigilInt:
		return d.decodeInt()
	case sigilList:
		return d.decodeList()
	case sigilDict:
		return d.decodeDict()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return d.decodeBytes()
	default:
		return Node{}, newErr(ErrInvalidByte, d.pos)
	}
}

// decodeInt parses i<num>e, rejecting leading zeros, negative zero and an
// empty digit span.
func (d *decoder) decodeInt() (Node, error) {
	start := d.pos
	d.pos++ // consume 'i'

	neg := false
	if c, ok := d.peek(); ok && c == '-' {
		neg = true
		d.pos++
	}

	digitsStart := d.pos
	for {
		c, ok := d.peek()
		if !ok {
			return Node{}, newErr(ErrInvalidIntNoDelimiter, start)
		}
		if c == sigilEnd {
			break
		}
		if c < '0' || c > '9' {
			return Node{}, newErr(ErrInvalidIntParseError, start)
		}
		d.pos++
	}
	digits := d.data[digitsStart:d.pos]
	end := d.pos
	d.pos++ // consume 'e'

	if len(digits) == 0 {
		return Node{}, newErr(ErrInvalidIntParseError, start)
	}
	if neg && digits[0] == '0' {
		return Node{}, newErr(ErrInvalidIntNegativeZero, start)
	}
	if len(digits) > 1 && digits[0] == '0' {
		return Node{}, newErr(ErrInvalidIntZeroPadding, start)
	}

	// The span between 'i' and 'e' (sign included) must fit in an int64.
	v, err := strconv.ParseInt(string(d.data[start+1:end]), 10, 64)
	if err != nil {
		return Node{}, newErr(ErrInvalidIntParseError, start)
	}

	return Node{kind: KindInt, i: v}, nil
}

// decodeBytes parses <len>:<raw bytes>, rejecting a leading-zero length
// (except the length 0 itself) and a declared length past the end of the
// remaining input.
func (d *decoder) decodeBytes() (Node, error) {
	start := d.pos
	lenStart := d.pos
	for {
		c, ok := d.peek()
		if !ok {
			return Node{}, newErr(ErrInvalidByte, start)
		}
		if c == sigilColon {
			break
		}
		if c < '0' || c > '9' {
			return Node{}, newErr(ErrInvalidByte, start)
		}
		d.pos++
	}
	digits := d.data[lenStart:d.pos]
	d.pos++ // consume ':'

	if len(digits) > 1 && digits[0] == '0' {
		return Node{}, newErr(ErrInvalidByte, start)
	}

	var length int
	for _, c := range digits {
		next := length*10 + int(c-'0')
		if next < length {
			return Node{}, newErr(ErrInvalidLengthOverflow, start)
		}
		length = next
	}

	if length > len(d.data)-d.pos {
		return Node{}, newErr(ErrInvalidLengthOverflow, start)
	}

	b := d.data[d.pos : d.pos+length]
	d.pos += length
	return Node{kind: KindBytes, b: b}, nil
}

func (d *decoder) enter() error {
	d.depth++
	if d.depth > d.opts.MaxRecursionDepth {
		return newErr(ErrInvalidRecursionLimitExceeded, d.pos)
	}
	return nil
}

func (d *decoder) decodeList() (Node, error) {
	if err := d.enter(); err != nil {
		return Node{}, err
	}
	defer func() { d.depth-- }()

	d.pos++ // consume 'l'
	items := make([]Node, 0)
	for {
		c, ok := d.peek()
		if !ok {
			return Node{}, newErr(ErrInvalidByte, d.pos)
		}
		if c == sigilEnd {
			d.pos++
			break
		}
		v, err := d.decodeValue()
		if err != nil {
			return Node{}, err
		}
		items = append(items, v)
	}
	return Node{kind: KindList, items: items}, nil
}

func (d *decoder) decodeDict() (Node, error) {
	if err := d.enter(); err != nil {
		return Node{}, err
	}
	defer func() { d.depth-- }()

	d.pos++ // consume 'd'
	pairs := make([]DictEntry, 0)
	var prevKey []byte
	havePrev := false

	for {
		c, ok := d.peek()
		if !ok {
			return Node{}, newErr(ErrInvalidByte, d.pos)
		}
		if c == sigilEnd {
			d.pos++
			break
		}

		keyPos := d.pos
		keyNode, err := d.decodeBytes()
		if err != nil {
			return Node{}, err
		}
		key := keyNode.b

		// Under EnforceSortedKeys, every key must be strictly greater than
		// the one before it, so checking only the immediate predecessor is
		// enough: transitivity of "strictly increasing" already rules out
		// a duplicate anywhere earlier in the dict. Without that guarantee,
		// keys can arrive in any order, so a duplicate may not be adjacent
		// to its earlier occurrence -- that requires scanning every key
		// seen so far, not just the last one.
		if havePrev && d.opts.EnforceSortedKeys {
			cmp := compareBytes(prevKey, key)
			if cmp == 0 {
				return Node{}, newKeyErr(ErrInvalidKeyDuplicates, keyPos, key)
			}
			if cmp > 0 {
				return Node{}, newKeyErr(ErrInvalidKeyOrdering, keyPos, key)
			}
		} else if !d.opts.EnforceSortedKeys {
			for _, p := range pairs {
				if compareBytes(p.Key, key) == 0 {
					return Node{}, newKeyErr(ErrInvalidKeyDuplicates, keyPos, key)
				}
			}
		}
		prevKey, havePrev = key, true

		val, err := d.decodeValue()
		if err != nil {
			return Node{}, err
		}
		pairs = append(pairs, DictEntry{Key: key, Val: val})
	}

	orderPairs(pairs)
	return Node{kind: KindDict, pairs: pairs}, nil
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// orderPairs sorts pairs by ascending key. Decode calls it for every dict;
// it only moves entries when the decoder was configured to tolerate
// unsorted input, so that every Node, borrowed or owned, satisfies the
// same "entries sorted ascending" invariant and Encode never needs a
// special case.
func orderPairs(pairs []DictEntry) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && compareBytes(pairs[j-1].Key, pairs[j].Key) > 0; j-- {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
		}
	}
}
