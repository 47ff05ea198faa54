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
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joeldudley/xorcrack"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const previewLength = 64

var saveFinding bool

// repeatingCmd represents the repeating command
var repeatingCmd = &cobra.Command{
	Use:   "repeating [file]",
	Short: "crack a repeating-key XOR cipher",
	Long: `repeating reads base64-encoded ciphertext from a file or standard
input, infers the key size from block self-similarity, recovers the full key
one position at a time, and prints the key and decrypted plaintext.

With --save, the recovered key is stored in the findings vault under the
blake2b digest of the ciphertext.`,
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := readInput(args)
		if err != nil {
			log.Fatal(err)
		}
		ciphertext, err := decodeBase64Lines(bytes.NewReader(raw))
		if err != nil {
			log.Fatal(err)
		}

		key, err := xorcrack.CrackRepeatingKey(ciphertext)
		if err != nil {
			log.Fatal(err)
		}
		plaintext, err := xorcrack.XOR(ciphertext, key)
		if err != nil {
			log.Fatal(err)
		}
		color.Green("key size: %v", len(key))
		color.Green("key: %q", string(key))
		fmt.Println(string(plaintext))

		if saveFinding {
			if err := save(ciphertext, key, plaintext); err != nil {
				log.Fatal(err)
			}
		}
	},
}

// decodeBase64Lines decodes each non-empty line of in as base64 and
// concatenates the results into a single buffer.
func decodeBase64Lines(in io.Reader) ([]byte, error) {
	var buf []byte
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(line)
		if err != nil {
			return nil, err
		}
		buf = append(buf, decoded...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func save(ciphertext, key, plaintext []byte) error {
	vault, err := xorcrack.NewBoltVault(xorcrack.VaultOptions{
		FilePath:   viper.GetString("vault"),
		Passphrase: viper.GetString("passphrase"),
	})
	if err != nil {
		return err
	}
	defer vault.Close()

	preview := string(plaintext)
	if len(preview) > previewLength {
		preview = preview[:previewLength]
	}
	finding := xorcrack.Finding{
		Digest:    xorcrack.Digest(ciphertext),
		Key:       key,
		KeySize:   len(key),
		Preview:   preview,
		Recovered: time.Now(),
	}
	if err := vault.Put(finding); err != nil {
		return err
	}
	config := Config{Vault: viper.GetString("vault")}
	return config.Save()
}

func init() {
	rootCmd.AddCommand(repeatingCmd)
	repeatingCmd.Flags().BoolVar(&saveFinding, "save", false, "store the recovered key in the findings vault")
}
