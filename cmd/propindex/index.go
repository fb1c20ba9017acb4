package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"propindex/internal/common"
	"propindex/internal/config"
	"propindex/props"
)

// typeReport is the index command's view of one type.
type typeReport struct {
	Type       string           `yaml:"type"`
	Properties []propertyReport `yaml:"properties"`
	Methods    []string         `yaml:"methods,omitempty"`
}

type propertyReport struct {
	Name    string   `yaml:"name"`
	Getters []string `yaml:"getters,omitempty"`
	Setters []string `yaml:"setters,omitempty"`
}

func runIndex(e *env, args []string) int {
	var (
		flags   commonFlags
		format  string
		methods bool
	)

	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	flags.register(fs)
	fs.StringVar(&format, "format", "", "output format: yaml or text (default from config, else yaml)")
	fs.BoolVar(&methods, "methods", false, "also list method names")

	if err := flags.parse(e, fs, args); err != nil {
		return exitUsage
	}

	w, err := load(e, &flags, fs.Args())
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	if format == "" {
		format = w.cfg.Output
	}

	descs, err := w.descriptors()
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	reports := make([]typeReport, 0, len(descs))
	for _, d := range descs {
		ix, err := w.index(e, d)
		if err != nil {
			fmt.Fprintln(e.stderr, "propindex:", err)
			return exitFailure
		}

		reports = append(reports, report(d, ix, methods))
	}

	switch format {
	case config.FormatYAML:
		err = writeYAML(e.stdout, reports)
	case config.FormatText:
		writeText(e.stdout, reports)
	default:
		fmt.Fprintf(e.stderr, "propindex: unknown format %q\n", format)
		return exitUsage
	}

	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	return exitOK
}

// report lists readable properties in index order, then write-only ones.
func report(d *props.Descriptor, ix *props.Index, methods bool) typeReport {
	r := typeReport{Type: d.String()}

	for _, name := range common.UniqueFold(ix.Properties(), ix.WritableProperties()) {
		r.Properties = append(r.Properties, propertyReport{
			Name:    name,
			Getters: signatures(ix.Getters(name)),
			Setters: signatures(ix.Setters(name)),
		})
	}

	if methods {
		r.Methods = ix.MethodNames()
	}

	return r
}

func signatures(ops []props.Operation) []string {
	if len(ops) == 0 {
		return nil
	}

	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.String())
	}

	return out
}

func writeYAML(w io.Writer, reports []typeReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	return enc.Close()
}

func writeText(w io.Writer, reports []typeReport) {
	for _, r := range reports {
		fmt.Fprintln(w, r.Type)

		for _, p := range r.Properties {
			fmt.Fprintf(w, "  %s: get=[%s] set=[%s]\n",
				p.Name, strings.Join(p.Getters, ", "), strings.Join(p.Setters, ", "))
		}

		if len(r.Methods) > 0 {
			fmt.Fprintf(w, "  methods: %s\n", strings.Join(r.Methods, ", "))
		}
	}
}
