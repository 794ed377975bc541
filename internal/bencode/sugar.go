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

// DictOf builds an owned dict node from a list of entries, in one call.
// It is ordinary sugar over NewDict + DictSet -- Go has no macro system to
// give it the terser ben_map! spelling some bencode libraries use.
func DictOf(entries ...DictEntry) Node {
	n := NewDict()
	for _, e := range entries {
		n.DictSet(e.Key, e.Val)
	}
	return n
}

// ListOf builds an owned list node from a list of items, in one call.
func ListOf(items ...Node) Node {
	n := NewList()
	for _, it := range items {
		n.ListPush(it)
	}
	return n
}

// Entry is a convenience constructor for a DictEntry with a string key.
func Entry(key string, val Node) DictEntry {
	return DictEntry{Key: []byte(key), Val: val}
}
