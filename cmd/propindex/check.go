package main

import (
	"flag"
	"fmt"

	"propindex/internal/config"
	"propindex/internal/diagnostic"
	"propindex/props"
)

func runCheck(e *env, args []string) int {
	var (
		flags commonFlags
		quiet bool
	)

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags.register(fs)
	fs.BoolVar(&quiet, "q", false, "omit info diagnostics")

	if err := flags.parse(e, fs, args); err != nil {
		return exitUsage
	}

	w, err := load(e, &flags, fs.Args())
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	descs, err := w.descriptors()
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	var diags diagnostic.Diagnostics

	for _, d := range descs {
		ix, err := w.index(e, d)
		if err != nil {
			diags.AddError(diagnostic.CodeLoad, err.Error(), d.String(), "")
			continue
		}

		diags.Merge(diagnostic.Inspect(ix))
	}

	for _, b := range w.cfg.Bindings {
		diags.Merge(w.checkBinding(e, b))
	}

	floor := diagnostic.SeverityInfo
	if quiet {
		floor = diagnostic.SeverityWarning
	}

	for _, d := range diags.AtLeast(floor) {
		fmt.Fprintf(e.stdout, "%s: %s\n", d.Severity, d)
	}

	e.log.Debug("check finished", "errors", len(diags.Errors), "warnings", len(diags.Warnings))

	if diags.HasErrors() {
		return exitFailure
	}

	return exitOK
}

// checkBinding reports a configured binding that does not resolve as an error.
func (w *workspace) checkBinding(e *env, b config.Binding) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	d, err := w.graph.Lookup(b.Type)
	if err != nil {
		diags.AddError(diagnostic.CodeLoad, err.Error(), b.Type, b.Property)
		return diags
	}

	ix, err := w.index(e, d)
	if err != nil {
		diags.AddError(diagnostic.CodeLoad, err.Error(), d.String(), b.Property)
		return diags
	}

	var expected props.Type
	if b.Expect != "" {
		if expected, err = w.graph.ParseType(b.Expect); err != nil {
			diags.AddError(diagnostic.CodeLoad, err.Error(), d.String(), b.Property)
			return diags
		}
	}

	_, known, found, err := resolve(ix, b.Kind, b.Property, expected)
	if err != nil {
		diags.AddError(diagnostic.CodeLoad, err.Error(), d.String(), b.Property)
		return diags
	}

	if !found {
		miss := diagnostic.Miss(d.String(), b.Kind, b.Property, known)
		miss.Severity = diagnostic.SeverityError
		diags.Add(miss)
	}

	return diags
}
