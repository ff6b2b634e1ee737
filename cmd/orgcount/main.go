package main

import (
	"fmt"
	"os"

	"github.com/danieljhkim/orgcount/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", cli.UserMessage(err))
		os.Exit(1)
	}
}
