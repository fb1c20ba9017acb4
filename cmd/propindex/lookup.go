package main

import (
	"flag"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"propindex/internal/config"
	"propindex/internal/diagnostic"
	"propindex/props"
)

// lookupResult is the flat view of a resolved operation printed by -dump.
type lookupResult struct {
	Type     string
	Kind     string
	Property string
	Method   string
	Params   []string
	Result   string
	Index    int
}

func runLookup(e *env, args []string) int {
	var (
		flags  commonFlags
		kind   string
		name   string
		expect string
		dump   bool
	)

	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	flags.register(fs)
	fs.StringVar(&kind, "kind", config.KindGetter, "accessor kind: getter, setter or method")
	fs.StringVar(&name, "name", "", "property or method name (case-insensitive)")
	fs.StringVar(&expect, "expect", "", "expected value type, e.g. *int32 or beans.Resource")
	fs.BoolVar(&dump, "dump", false, "dump the resolved operation")

	if err := flags.parse(e, fs, args); err != nil {
		return exitUsage
	}

	if len(flags.types) != 1 || name == "" {
		fmt.Fprintln(e.stderr, "propindex: lookup needs exactly one -type and a -name")
		return exitUsage
	}

	w, err := load(e, &flags, fs.Args())
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	d, err := w.graph.Lookup(flags.types[0])
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	ix, err := w.index(e, d)
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	var expected props.Type
	if expect != "" {
		if expected, err = w.graph.ParseType(expect); err != nil {
			fmt.Fprintln(e.stderr, "propindex:", err)
			return exitUsage
		}
	}

	op, known, found, err := resolve(ix, kind, name, expected)
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitUsage
	}

	if !found {
		fmt.Fprintln(e.stdout, diagnostic.Miss(d.String(), kind, name, known))
		return exitFailure
	}

	e.log.Debug("resolved", "type", d.String(), "kind", kind, "name", name, "operation", op.Name)

	if !dump {
		fmt.Fprintln(e.stdout, op)
		return exitOK
	}

	res := lookupResult{
		Type:     d.String(),
		Kind:     kind,
		Property: name,
		Method:   op.Name,
		Index:    op.Index,
	}
	for _, p := range op.Params {
		res.Params = append(res.Params, p.String())
	}
	if op.Result != nil {
		res.Result = op.Result.String()
	}

	spew.Fdump(e.stdout, res)

	return exitOK
}

// resolve runs one lookup of the given kind and also returns the names it
// searched, for suggestions.
func resolve(ix *props.Index, kind, name string, expected props.Type) (props.Operation, []string, bool, error) {
	var (
		op    props.Operation
		found bool
	)

	switch kind {
	case config.KindGetter:
		op, found = ix.Getter(name, expected)
		return op, ix.Properties(), found, nil
	case config.KindSetter:
		op, found = ix.Setter(name, expected)
		return op, ix.WritableProperties(), found, nil
	case config.KindMethod:
		op, found = ix.Method(name)
		return op, ix.MethodNames(), found, nil
	default:
		return op, nil, false, fmt.Errorf("unknown kind %q", kind)
	}
}
