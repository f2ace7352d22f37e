package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/bili/internal/cli"
	"github.com/dmitrymomot/bili/pkg/logger"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := cli.NewLogger(cfg, os.Stderr)
	logger.SetAsDefault(log)

	if err := cli.NewRootCommand(cfg, log).Execute(); err != nil {
		os.Exit(1)
	}
}
