// Package main is the entry point for finance-page CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/finance-page/cmd/finance-page/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
