package main

import (
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/cli"
)

func main() {
	root := cli.Root()
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
