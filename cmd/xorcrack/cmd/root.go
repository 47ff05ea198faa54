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
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xorcrack",
	Short: "break single-byte and repeating-key XOR ciphers",
	Long: `xorcrack recovers XOR keys from ciphertext alone, using English
letter-frequency scoring and Hamming-distance key-size inference.

	xorcrack single ciphertext.hex
	xorcrack detect candidates.hex
	xorcrack repeating ciphertext.b64
	`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./xorcrack.yaml)")
	rootCmd.PersistentFlags().String("vault", "", "path to the findings vault")
	rootCmd.PersistentFlags().String("passphrase", "", "passphrase sealing the findings vault")
	viper.BindPFlag("vault", rootCmd.PersistentFlags().Lookup("vault"))
	viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in the home directory and the current directory
		// with name "xorcrack" (without extension).
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("xorcrack")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// Config is used to save important settings
type Config struct {
	Vault string
}

// Save saves a config to disk as a yaml file in the existing directory
func (c Config) Save() error {
	d, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}
	os.Remove("xorcrack.yaml")
	return ioutil.WriteFile("xorcrack.yaml", d, 0644)
}

// readInput returns the contents of the file named by the first argument,
// or of standard input when no arguments are given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(args[0])
}

// decodeHexLines decodes each non-empty line of in as hex, returning one
// buffer per line.
func decodeHexLines(in io.Reader) ([][]byte, error) {
	var bufs [][]byte
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		buf, err := hex.DecodeString(line)
		if err != nil {
			return nil, err
		}
		bufs = append(bufs, buf)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bufs, nil
}
