package main

import (
	"os"

	"github.com/provide-io/mvg/go/mvg/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewGeometricFilterCommand(cli.Options{}), os.Args[1:]))
}
