package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"propindex/internal/analyze"
	"propindex/internal/config"
	"propindex/props"
)

var errNoPackages = errors.New("no packages to load: pass package patterns, -config or fully qualified -type")

// workspace is the loaded configuration and package graph of one command run.
type workspace struct {
	cfg   *config.File
	graph *analyze.Graph
}

// load merges the configuration file, flags and positional patterns (flags win)
// and loads the resulting packages.
func load(e *env, flags *commonFlags, patterns []string) (*workspace, error) {
	cfg := &config.File{}
	if flags.config != "" {
		var err error
		if cfg, err = config.LoadFile(flags.config); err != nil {
			return nil, err
		}
	}

	if len(patterns) > 0 {
		cfg.Packages = patterns
	}
	if len(flags.types) > 0 {
		cfg.Types = flags.types
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = packagesOf(cfg.Types)
	}
	if len(cfg.Packages) == 0 {
		return nil, errNoPackages
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := analyze.NewAnalyzer()
	a.Dir = flags.dir

	start := time.Now()
	e.log.Debug("loading packages", "patterns", cfg.Packages, "dir", flags.dir)

	graph, err := a.LoadPackages(cfg.Packages...)
	if err != nil {
		return nil, err
	}

	e.log.Debug("packages loaded", "packages", len(graph.Packages), "types", len(graph.Types),
		"elapsed", time.Since(start))

	return &workspace{cfg: cfg, graph: graph}, nil
}

// packagesOf returns the import paths of fully qualified type names, in first-seen order.
func packagesOf(typeNames []string) []string {
	var out []string
	for _, name := range typeNames {
		i := strings.LastIndexByte(name, '.')
		if i <= 0 || !strings.Contains(name[:i], "/") {
			continue
		}

		if pkg := name[:i]; !slices.Contains(out, pkg) {
			out = append(out, pkg)
		}
	}

	return out
}

// descriptors returns the configured types, or every described type sorted by name.
func (w *workspace) descriptors() ([]*props.Descriptor, error) {
	if len(w.cfg.Types) > 0 {
		out := make([]*props.Descriptor, 0, len(w.cfg.Types))
		for _, name := range w.cfg.Types {
			d, err := w.graph.Lookup(name)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}

		return out, nil
	}

	out := make([]*props.Descriptor, 0, len(w.graph.Types))
	for _, d := range w.graph.Types {
		out = append(out, d)
	}

	slices.SortFunc(out, func(a, b *props.Descriptor) int {
		return strings.Compare(a.String(), b.String())
	})

	return out, nil
}

// index builds the index of a descriptor, logging the build.
func (w *workspace) index(e *env, d *props.Descriptor) (*props.Index, error) {
	ix, err := props.Build(d)
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", d, err)
	}

	e.log.Debug("indexed", "type", d.String(), "operations", len(d.Operations),
		"properties", len(ix.Properties()))

	return ix, nil
}
