package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mythonlang/mython/mython"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return replCommand()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	if len(args) == 0 {
		return errors.New("mython run: script path required")
	}
	scriptPath := args[0]
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if err := mython.Run(string(input), os.Stdout); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <run|repl|help> [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "  run <script>   compile and execute a Mython source file")
	fmt.Fprintln(os.Stderr, "  repl           start an interactive session")
}
