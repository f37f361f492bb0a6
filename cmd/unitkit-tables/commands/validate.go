package commands

import (
	"fmt"

	"github.com/unitkit/unitkit-go/pkg/tableparse"
)

// RunValidate loads and builds a table file, reporting the first
// problem found. A table that builds cleanly resolves every derived
// composition and quantity expression.
func RunValidate(path string) error {
	raw, err := tableparse.LoadTable(path)
	if err != nil {
		return err
	}
	reg, err := tableparse.Build(raw)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d symbols, %d quantities, table version %s)\n",
		path, len(reg.Symbols()), len(reg.QuantityNames()), raw.TableVersion)
	return nil
}
