package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/agiangrant/twmerge/cmd/twmerge/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "merge":
		err = commands.Merge(args, os.Stdin, os.Stdout)
	case "classify":
		err = commands.Classify(args, os.Stdout)
	case "lint":
		err = commands.Lint(args, os.Stdout)
	case "init":
		err = commands.Init(args, os.Stdout)
	case "config":
		err = commands.Config(args, os.Stdout)
	case "version", "--version":
		fmt.Printf("twmerge version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if commands.IsHelp(err) {
			return
		}
		// findings are already printed
		if !errors.Is(err, commands.ErrFindings) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`twmerge - Tailwind CSS class conflict resolver

Usage: twmerge <command> [options]

Commands:
  merge       Merge class lists given as arguments or read from stdin
  classify    Show how each class is parsed and grouped
  lint        Report redundant classes in HTML files
  init        Write a starter twmerge.toml
  config      Print the effective configuration
  version     Print version information
  help        Show this help message

Common options:
  --config    Path to twmerge.toml (default: search upwards)
  --prefix    Class prefix, overrides the config file
  -v          Verbose logging

Examples:
  twmerge merge "px-2 py-1 p-3"            Prints "p-3"
  echo "hover:pt-2 pt-4" | twmerge merge   Merges each stdin line
  twmerge classify md:hover:text-lg/7      Explains a class
  twmerge lint --watch templates/*.html    Re-lints on every save`)
}
