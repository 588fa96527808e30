package main

import (
	"os"

	"weightidx/internal/cli"
)

func main() { os.Exit(cli.Main()) }
