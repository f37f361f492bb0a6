// Command unitkit-repl is an interactive unit calculator.
//
// It loads a unit table (built-in by default), restores any persisted
// runtime registrations, and drops into a readline prompt.
//
// Usage:
//
//	unitkit-repl [flags]
//
// Flags:
//
//	-table string      YAML unit table file (default: built-in table)
//	-state-dir string  Directory for persisted runtime registrations
//	-log-file string   Write engine events to a CBOR log file
//	-verbose           Echo engine events to the console via slog
//
// Interactive Commands:
//
//	resolve <unit>                 - Resolve a compound unit to SI
//	convert <value> <unit> to <unit> - Convert a quantity
//	kind <unit>                    - Classify a unit
//	dims <unit>                    - Show a unit's dimension vector
//	compatible <unit>              - List table units with the same dimensions
//	register fundamental <sym> <dimension> <factor> [offset]
//	register derived <sym> <factor> <composition>
//	list units|quantities          - List table contents
//	quit                           - Exit
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/unitkit/unitkit-go/cmd/unitkit-repl/interactive"
	"github.com/unitkit/unitkit-go/pkg/log"
	"github.com/unitkit/unitkit-go/pkg/persistence"
	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/tableparse"
)

func main() {
	tablePath := flag.String("table", "", "YAML unit table file (default: built-in table)")
	stateDir := flag.String("state-dir", "", "directory for persisted runtime registrations")
	logFile := flag.String("log-file", "", "write engine events to a CBOR log file")
	verbose := flag.Bool("verbose", false, "echo engine events to the console")
	flag.Parse()

	if err := run(*tablePath, *stateDir, *logFile, *verbose); err != nil {
		stdlog.Fatalf("unitkit-repl: %v", err)
	}
}

func run(tablePath, stateDir, logFile string, verbose bool) error {
	reg := registry.Default()
	if tablePath != "" {
		raw, err := tableparse.LoadTable(tablePath)
		if err != nil {
			return err
		}
		reg, err = tableparse.Build(raw)
		if err != nil {
			return err
		}
	}

	var store *persistence.StateStore
	if stateDir != "" {
		store = persistence.NewStateStore(filepath.Join(stateDir, "extensions.json"))
		state, err := store.Load()
		if err != nil {
			return fmt.Errorf("loading persisted registrations: %w", err)
		}
		if err := persistence.Apply(state, reg); err != nil {
			return fmt.Errorf("applying persisted registrations: %w", err)
		}
	}

	var loggers []log.Logger
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, log.NewSlogAdapter(slog.New(handler)))
	}
	if logFile != "" {
		fl, err := log.NewFileLogger(logFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer fl.Close()
		loggers = append(loggers, fl)
	}
	var logger log.Logger = log.NoopLogger{}
	if len(loggers) > 0 {
		logger = log.NewMultiLogger(loggers...)
	}

	repl, err := interactive.New(reg, store, logger)
	if err != nil {
		return err
	}
	defer repl.Close()

	return repl.Run()
}
