package main

import (
	"os"

	"github.com/glaze-ui/glaze/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
