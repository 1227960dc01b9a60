package main

import (
	"os"

	"github.com/solatis/cartorule/cmd/cartorule/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
