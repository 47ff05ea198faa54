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

	"github.com/fatih/color"
	"github.com/joeldudley/xorcrack"
	"github.com/spf13/cobra"
)

// singleCmd represents the single command
var singleCmd = &cobra.Command{
	Use:   "single [file]",
	Short: "crack a single-byte XOR cipher",
	Long: `single reads hex-encoded ciphertext from a file or standard input,
searches all 256 single-byte keys for the most English-like decryption,
and prints the recovered key and plaintext.`,
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := readInput(args)
		if err != nil {
			log.Fatal(err)
		}
		lines, err := decodeHexLines(bytes.NewReader(raw))
		if err != nil {
			log.Fatal(err)
		}
		var ciphertext []byte
		for _, line := range lines {
			ciphertext = append(ciphertext, line...)
		}

		key := xorcrack.FindSingleByteKey(ciphertext)
		plaintext, err := xorcrack.XOR(ciphertext, []byte{key})
		if err != nil {
			log.Fatal(err)
		}
		color.Green("key: 0x%02x", key)
		fmt.Println(string(plaintext))
	},
}

func init() {
	rootCmd.AddCommand(singleCmd)
}
