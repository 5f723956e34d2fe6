package main

import (
	"tableflip.dev/chrono/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		commands.Logger.Fatalf("error during command execution: %v", err)
	}
}
