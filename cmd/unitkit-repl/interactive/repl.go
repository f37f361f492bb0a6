// Package interactive implements the unitkit-repl command loop.
package interactive

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/log"
	"github.com/unitkit/unitkit-go/pkg/persistence"
	"github.com/unitkit/unitkit-go/pkg/quantity"
	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/unit"
)

const helpText = `Commands:
  resolve <unit>                      Resolve a compound unit to SI
  convert <value> <unit> to <unit>    Convert a quantity
  kind <unit>                         Classify a unit
  dims <unit>                         Show a unit's dimension vector
  compatible <unit>                   List table units with the same dimensions
  register fundamental <sym> <dimension> <factor> [offset]
  register derived <sym> <factor> <composition>
  list units|quantities               List table contents
  help                                Show this help
  quit                                Exit
`

// Repl handles the interactive command loop.
type Repl struct {
	reg       *registry.Registry
	store     *persistence.StateStore
	state     *persistence.ExtensionState
	logger    log.Logger
	sessionID string
	rl        *readline.Instance
}

// New creates a repl bound to a registry. store may be nil to disable
// persistence of runtime registrations.
func New(reg *registry.Registry, store *persistence.StateStore, logger log.Logger) (*Repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "unit> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	state := &persistence.ExtensionState{}
	if store != nil {
		if saved, err := store.Load(); err == nil && saved != nil {
			state = saved
		}
	}

	return &Repl{
		reg:       reg,
		store:     store,
		state:     state,
		logger:    logger,
		sessionID: uuid.NewString(),
		rl:        rl,
	}, nil
}

// Close releases the readline instance.
func (r *Repl) Close() error {
	return r.rl.Close()
}

// Stdout returns the readline-managed stdout writer, so other output
// does not interfere with the prompt.
func (r *Repl) Stdout() io.Writer {
	return r.rl.Stdout()
}

// Run reads and dispatches commands until quit or EOF.
func (r *Repl) Run() error {
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(r.Stdout(), helpText)
		case "resolve":
			r.cmdResolve(fields[1:])
		case "convert":
			r.cmdConvert(fields[1:])
		case "kind":
			r.cmdKind(fields[1:])
		case "dims":
			r.cmdDims(fields[1:])
		case "compatible":
			r.cmdCompatible(fields[1:])
		case "register":
			r.cmdRegister(fields[1:])
		case "list":
			r.cmdList(fields[1:])
		default:
			fmt.Fprintf(r.Stdout(), "unknown command %q (try help)\n", fields[0])
		}
	}
}

func (r *Repl) event(category log.Category, input string) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		SessionID: r.sessionID,
		Category:  category,
		Input:     input,
	}
}

func (r *Repl) fail(context string, err error) {
	ev := r.event(log.CategoryError, context)
	ev.Error = &log.ErrorEventData{Message: err.Error(), Context: context}
	r.logger.Log(ev)
	fmt.Fprintf(r.Stdout(), "error: %v\n", err)
}

func (r *Repl) cmdResolve(args []string) {
	expr := strings.Join(args, " ")
	u, err := unit.New(r.reg, expr)
	if err != nil {
		r.fail("resolve "+expr, err)
		return
	}

	ev := r.event(log.CategoryResolve, expr)
	ev.Resolution = &log.ResolutionEvent{
		SI:     u.SI(),
		Scale:  u.Scale(),
		Offset: u.Offset(),
		Kind:   u.Kind().String(),
	}
	r.logger.Log(ev)

	si := u.SI()
	if si == "" {
		si = "(dimensionless)"
	}
	fmt.Fprintf(r.Stdout(), "%s = %s, scale %g", u.Name(), si, u.Scale())
	if u.Offset() != 0 {
		fmt.Fprintf(r.Stdout(), ", offset %g", u.Offset())
	}
	fmt.Fprintf(r.Stdout(), " (%s)\n", u.Kind())
}

func (r *Repl) cmdConvert(args []string) {
	input := strings.Join(args, " ")
	if len(args) < 3 {
		fmt.Fprintln(r.Stdout(), "usage: convert <value> <unit> to <unit>")
		return
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		r.fail("convert "+input, fmt.Errorf("bad value %q: %w", args[0], err))
		return
	}

	toIdx := -1
	for i, tok := range args[1:] {
		if tok == "to" {
			toIdx = i + 1
		}
	}
	if toIdx < 2 || toIdx == len(args)-1 {
		fmt.Fprintln(r.Stdout(), "usage: convert <value> <unit> to <unit>")
		return
	}

	from := strings.Join(args[1:toIdx], " ")
	target := strings.Join(args[toIdx+1:], " ")

	q, err := quantity.New(r.reg, value, from)
	if err != nil {
		r.fail("convert "+input, err)
		return
	}
	converted, err := q.To(target)
	if err != nil {
		r.fail("convert "+input, err)
		return
	}

	ev := r.event(log.CategoryConvert, input)
	ev.Conversion = &log.ConversionEvent{
		FromUnit:  q.Unit().Name(),
		ToUnit:    converted.Unit().Name(),
		FromValue: q.Value(),
		ToValue:   converted.Value(),
	}
	r.logger.Log(ev)

	fmt.Fprintf(r.Stdout(), "%s = %s\n", q, converted)
}

func (r *Repl) cmdKind(args []string) {
	expr := strings.Join(args, " ")
	k, err := unit.KindOf(r.reg, expr)
	if err != nil {
		r.fail("kind "+expr, err)
		return
	}
	fmt.Fprintf(r.Stdout(), "%s\n", k)
}

func (r *Repl) cmdDims(args []string) {
	expr := strings.Join(args, " ")
	u, err := unit.New(r.reg, expr)
	if err != nil {
		r.fail("dims "+expr, err)
		return
	}
	vec := u.Vector()
	if vec.IsZero() {
		fmt.Fprintln(r.Stdout(), "(dimensionless)")
		return
	}
	fmt.Fprintf(r.Stdout(), "%s\n", vec)
}

func (r *Repl) cmdCompatible(args []string) {
	expr := strings.Join(args, " ")
	u, err := unit.New(r.reg, expr)
	if err != nil {
		r.fail("compatible "+expr, err)
		return
	}
	syms, err := u.SameDimension(r.reg)
	if err != nil {
		r.fail("compatible "+expr, err)
		return
	}
	if len(syms) == 0 {
		fmt.Fprintln(r.Stdout(), "(none)")
		return
	}
	fmt.Fprintln(r.Stdout(), strings.Join(syms, " "))
}

func (r *Repl) cmdRegister(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.Stdout(), "usage: register fundamental|derived ...")
		return
	}
	switch args[0] {
	case "fundamental":
		r.registerFundamental(args[1:])
	case "derived":
		r.registerDerived(args[1:])
	default:
		fmt.Fprintln(r.Stdout(), "usage: register fundamental|derived ...")
	}
}

func (r *Repl) registerFundamental(args []string) {
	if len(args) < 3 || len(args) > 4 {
		fmt.Fprintln(r.Stdout(), "usage: register fundamental <sym> <dimension> <factor> [offset]")
		return
	}
	input := "register fundamental " + strings.Join(args, " ")

	// Dimension names with spaces use underscores on the command line,
	// e.g. temperature_difference.
	base, err := dimension.ParseBase(strings.ReplaceAll(args[1], "_", " "))
	if err != nil {
		r.fail(input, err)
		return
	}
	factor, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		r.fail(input, fmt.Errorf("bad factor %q: %w", args[2], err))
		return
	}
	offset := 0.0
	if len(args) == 4 {
		offset, err = strconv.ParseFloat(args[3], 64)
		if err != nil {
			r.fail(input, fmt.Errorf("bad offset %q: %w", args[3], err))
			return
		}
	}

	f := registry.Fundamental{Symbol: args[0], Base: base, Factor: factor, Offset: offset}
	if err := r.reg.RegisterFundamental(f); err != nil {
		r.fail(input, err)
		return
	}
	r.state.Record(f)
	r.saveState()

	ev := r.event(log.CategoryRegister, input)
	ev.Registration = &log.RegistrationEvent{
		Symbol:      f.Symbol,
		Definition:  base.String(),
		Fundamental: true,
	}
	r.logger.Log(ev)
	fmt.Fprintf(r.Stdout(), "registered %s (%s)\n", f.Symbol, base)
}

func (r *Repl) registerDerived(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(r.Stdout(), "usage: register derived <sym> <factor> <composition>")
		return
	}
	input := "register derived " + strings.Join(args, " ")

	factor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		r.fail(input, fmt.Errorf("bad factor %q: %w", args[1], err))
		return
	}
	d := registry.Derived{
		Symbol:      args[0],
		Composition: strings.Join(args[2:], " "),
		Factor:      factor,
	}

	// Resolve the composition before registering so a typo doesn't land
	// in the table.
	if _, err := unit.Resolve(r.reg, d.Composition); err != nil {
		r.fail(input, err)
		return
	}
	if err := r.reg.RegisterDerived(d); err != nil {
		r.fail(input, err)
		return
	}
	r.state.RecordDerived(d)
	r.saveState()

	ev := r.event(log.CategoryRegister, input)
	ev.Registration = &log.RegistrationEvent{Symbol: d.Symbol, Definition: d.Composition}
	r.logger.Log(ev)
	fmt.Fprintf(r.Stdout(), "registered %s = %g %s\n", d.Symbol, d.Factor, d.Composition)
}

func (r *Repl) saveState() {
	if r.store == nil {
		return
	}
	if err := r.store.Save(r.state); err != nil {
		fmt.Fprintf(r.Stdout(), "warning: persisting registration failed: %v\n", err)
	}
}

func (r *Repl) cmdList(args []string) {
	what := "units"
	if len(args) > 0 {
		what = args[0]
	}
	switch what {
	case "units":
		fmt.Fprintln(r.Stdout(), strings.Join(r.reg.Symbols(), " "))
	case "quantities":
		fmt.Fprintln(r.Stdout(), strings.Join(r.reg.QuantityNames(), " "))
	default:
		fmt.Fprintln(r.Stdout(), "usage: list units|quantities")
	}
}
