package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"verichain/cmd/verichain/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
