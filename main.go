package main

import (
	"os"

	"github.com/compozy/textchunk/cli"
	"github.com/compozy/textchunk/pkg/logger"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
