package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe/cmd"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
