package main

import (
	"os"

	"github.com/rcliao/ais-codes/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
