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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/benclib/bencode/internal/bencode"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Build a bencode tree from JSON and print its canonical encoding",
	Long: `Reads a JSON document -- a file argument, or stdin if none is given --
and re-encodes it as canonical bencode. JSON numbers become bencode
integers, JSON strings become bencode byte strings, JSON arrays become
bencode lists and JSON objects become bencode dicts with their keys
sorted into ascending order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("bencat: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("bencat: %w", err)
	}

	root, err := nodeFromJSON(v)
	if err != nil {
		return fmt.Errorf("bencat: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(root.Encode())
	return err
}

// nodeFromJSON builds an owned bencode tree from a value produced by
// json.Unmarshal into `any`. JSON has no integer/float distinction, so a
// JSON number is only accepted here if it has no fractional part.
func nodeFromJSON(v any) (bencode.Node, error) {
	switch val := v.(type) {
	case nil:
		return bencode.NewBytes(nil), nil
	case float64:
		if val != float64(int64(val)) {
			return bencode.Node{}, fmt.Errorf("bencode integers must be whole numbers, got %v", val)
		}
		return bencode.NewInt(int64(val)), nil
	case string:
		return bencode.NewBytes([]byte(val)), nil
	case []any:
		items := make([]bencode.Node, len(val))
		for i, it := range val {
			n, err := nodeFromJSON(it)
			if err != nil {
				return bencode.Node{}, err
			}
			items[i] = n
		}
		return bencode.ListOf(items...), nil
	case map[string]any:
		dict := bencode.NewDict()
		for k, it := range val {
			n, err := nodeFromJSON(it)
			if err != nil {
				return bencode.Node{}, err
			}
			dict.DictSet([]byte(k), n)
		}
		return dict, nil
	default:
		return bencode.Node{}, fmt.Errorf("unsupported JSON value of type %T", v)
	}
}
