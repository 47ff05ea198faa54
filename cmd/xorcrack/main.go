package main

import "github.com/joeldudley/xorcrack/cmd/xorcrack/cmd"

func main() {
	cmd.Execute()
}
