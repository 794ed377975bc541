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
	"os"

	"github.com/benclib/bencode/internal/bencode"
	"github.com/spf13/cobra"
)

var (
	inspectMaxDepth          uint32
	inspectAllowUnsortedKeys bool
	inspectAllowTrailing     bool
	inspectAsStruct          bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decode a bencoded file and print its contents as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Uint32Var(&inspectMaxDepth, "max-depth", bencode.DefaultDecodeOptions().MaxRecursionDepth,
		"maximum nesting depth accepted while decoding")
	inspectCmd.Flags().BoolVar(&inspectAllowUnsortedKeys, "allow-unsorted-keys", false,
		"accept dicts whose keys are not in ascending order")
	inspectCmd.Flags().BoolVar(&inspectAllowTrailing, "trailing-bytes", false,
		"ignore bytes left over after the top-level value")
	inspectCmd.Flags().BoolVar(&inspectAsStruct, "struct", false,
		"decode through Unmarshal into a generic map instead of walking the tree directly")
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("bencat: %w", err)
	}

	opts := bencode.DecodeOptions{
		EnforceSortedKeys:  !inspectAllowUnsortedKeys,
		MaxRecursionDepth:  inspectMaxDepth,
		AllowTrailingBytes: inspectAllowTrailing,
	}
	root, err := bencode.Decode(data, opts)
	if err != nil {
		return fmt.Errorf("bencat: %w", err)
	}

	var value any
	if inspectAsStruct {
		var generic map[string]any
		if root.Kind() == bencode.KindDict {
			if err := bencode.Unmarshal(root, &generic); err != nil {
				return fmt.Errorf("bencat: %w", err)
			}
			value = generic
		} else {
			value = root.ToGoValue()
		}
	} else {
		value = root.ToGoValue()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
