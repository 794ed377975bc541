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

// Command bencat reads local bencoded files -- raw B-encoding or full
// .torrent metainfo -- and prints them in human-readable form. It never
// dials a tracker or a peer; everything it does is local file decoding.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const bencatVersion = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "bencat",
	Short:   "Inspect bencoded files and BitTorrent metainfo",
	Version: bencatVersion,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(mutateCmd)
}
