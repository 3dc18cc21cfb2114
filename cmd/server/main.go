package main

import (
	"os"

	"rides/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
