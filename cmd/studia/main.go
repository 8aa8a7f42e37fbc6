package main

import (
	"os"

	"github.com/studia-cl/studia-mobile/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
