// Command unitkit-tables is a tool for working with unit table data
// and engine log files.
//
// Usage:
//
//	unitkit-tables <command> [flags] <file>
//
// Commands:
//
//	validate  Validate a YAML unit table file
//	dump      Dump the resolved registry of a table file
//	export    Export an engine log file (.ulog) to JSONL
//
// Examples:
//
//	# Validate a table before shipping it
//	unitkit-tables validate tables/si.yaml
//
//	# Show every symbol with its SI resolution
//	unitkit-tables dump tables/si.yaml
//
//	# Dump the built-in table
//	unitkit-tables dump -builtin
//
//	# Export a session log to JSONL
//	unitkit-tables export session.ulog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unitkit/unitkit-go/cmd/unitkit-tables/commands"
)

const usage = `unitkit-tables - unit table and log tooling

Usage:
  unitkit-tables <command> [flags] <file>

Commands:
  validate  Validate a YAML unit table file
  dump      Dump the resolved registry of a table file
  export    Export an engine log file (.ulog) to JSONL

Use "unitkit-tables <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		runValidate(args)
	case "dump":
		runDump(args)
	case "export":
		runExport(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", cmd, usage)
		os.Exit(1)
	}
}

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: unitkit-tables validate <table.yaml>")
		os.Exit(1)
	}
	if err := commands.RunValidate(fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	builtin := fs.Bool("builtin", false, "dump the built-in table instead of a file")
	fs.Parse(args)

	path := ""
	if !*builtin {
		if fs.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "usage: unitkit-tables dump [-builtin] <table.yaml>")
			os.Exit(1)
		}
		path = fs.Arg(0)
	}
	if err := commands.RunDump(path); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("o", "", "output file (default stdout)")
	session := fs.String("session", "", "filter by session ID")
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: unitkit-tables export [-o out.jsonl] [-session id] <file.ulog>")
		os.Exit(1)
	}
	if err := commands.RunExport(fs.Arg(0), *output, *session); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
