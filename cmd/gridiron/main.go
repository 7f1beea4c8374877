// main is the entry point for the gridiron CLI.
package main

import (
	"github.com/huangsam/gridiron/cmd"
	"github.com/huangsam/gridiron/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
