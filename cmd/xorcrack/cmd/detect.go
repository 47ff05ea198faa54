// Copyright © 2019 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bytes"
	"fmt"
	"log"

	"github.com/joeldudley/xorcrack"
	"github.com/spf13/cobra"
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "find the XOR-encrypted line in a batch",
	Long: `detect reads a file of hex-encoded lines, one candidate ciphertext
per line, cracks each as a single-byte XOR cipher, and prints the decryption
that scores most like English across the whole batch.`,
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := readInput(args)
		if err != nil {
			log.Fatal(err)
		}
		ciphertexts, err := decodeHexLines(bytes.NewReader(raw))
		if err != nil {
			log.Fatal(err)
		}
		plaintext, err := xorcrack.DetectSingleByteXOR(ciphertexts)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(plaintext))
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
