package main

import (
	"os"

	"github.com/mlipski/penplot/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
