package main

import (
	"os"

	"github.com/TualatinX/chainaddr/cli"
)

func main() {
	defer os.Exit(0)
	cmd := cli.CommandLine{}
	cmd.Run()
}
