package main

import "github.com/nfrund/ledgerline/cmd/sitectl/cmd"

func main() {
	cmd.Execute()
}
