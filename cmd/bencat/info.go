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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/benclib/bencode/internal/metainfo"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <torrent-file>",
	Short: "Parse a .torrent file and print its metainfo",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("bencat: %w", err)
	}

	m, err := metainfo.Parse(data)
	if err != nil {
		return fmt.Errorf("bencat: %w", err)
	}

	out := cmd.OutOrStdout()
	hash := m.InfoHash()
	fmt.Fprintf(out, "announce:  %s\n", m.AnnounceURL())
	fmt.Fprintf(out, "info hash: %s\n", hex.EncodeToString(hash[:]))
	if v, ok := m.Comment(); ok {
		fmt.Fprintf(out, "comment:   %s\n", v)
	}
	if v, ok := m.CreatedBy(); ok {
		fmt.Fprintf(out, "created by: %s\n", v)
	}
	if v, ok := m.CreationDate(); ok {
		fmt.Fprintf(out, "creation date: %d\n", v)
	}

	info := m.Info()
	fmt.Fprintf(out, "piece length: %d\n", info.PieceLength())
	fmt.Fprintf(out, "private: %t\n", info.IsPrivate())
	if dir, ok := info.Directory(); ok {
		fmt.Fprintf(out, "directory: %s\n", dir)
	}

	pieceCount := 0
	for range info.Pieces() {
		pieceCount++
	}
	fmt.Fprintf(out, "pieces: %d\n", pieceCount)

	fmt.Fprintln(out, "files:")
	for f := range info.Files() {
		path := ""
		for p := range f.Paths() {
			if path != "" {
				path += "/"
			}
			path += p
		}
		fmt.Fprintf(out, "  %s (%d bytes)\n", path, f.Length())
	}
	return nil
}
