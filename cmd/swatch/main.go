package main

import (
	"fmt"
	"os"

	"github.com/swatchkit/swatch/internal/logger"
)

func main() {
	level := "warn"
	if verboseRequested(os.Args[1:]) {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// verboseRequested peeks at the args because the logger has to exist
// before cobra parses flags.
func verboseRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--verbose" || arg == "-v" {
			return true
		}
	}
	return false
}
