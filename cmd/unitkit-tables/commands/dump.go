package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/tableparse"
	"github.com/unitkit/unitkit-go/pkg/unit"
)

// RunDump prints every symbol of a table with its SI resolution and
// classified kind. An empty path dumps the built-in table.
func RunDump(path string) error {
	var reg *registry.Registry
	if path == "" {
		reg = registry.Default()
	} else {
		raw, err := tableparse.LoadTable(path)
		if err != nil {
			return err
		}
		reg, err = tableparse.Build(raw)
		if err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tSI\tSCALE\tOFFSET\tKIND")
	for _, sym := range reg.Symbols() {
		u, err := unit.New(reg, sym)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", sym, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%s\n",
			sym, u.SI(), u.Scale(), u.Offset(), u.Kind())
	}
	return w.Flush()
}
