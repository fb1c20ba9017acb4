package main

import (
	"flag"
	"fmt"
	"go/token"

	"propindex/internal/gen"
)

func runGen(e *env, args []string) int {
	var (
		flags    commonFlags
		pkgName  string
		pkgPath  string
		out      string
		filename string
		dryRun   bool
	)

	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	flags.register(fs)
	fs.StringVar(&pkgName, "pkg", "", "name of the generated package")
	fs.StringVar(&pkgPath, "pkgpath", "", "import path of the generated package")
	fs.StringVar(&out, "out", "", "output directory")
	fs.StringVar(&filename, "filename", "", "generated file name")
	fs.BoolVar(&dryRun, "n", false, "print the generated file instead of writing it")

	if err := flags.parse(e, fs, args); err != nil {
		return exitUsage
	}

	w, err := load(e, &flags, fs.Args())
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = first(pkgName, w.cfg.Gen.Package, cfg.PackageName)
	cfg.PkgPath = first(pkgPath, w.cfg.Gen.PkgPath)
	cfg.Filename = first(filename, w.cfg.Gen.Filename, cfg.Filename)
	out = first(out, w.cfg.Gen.Out, ".")

	if !token.IsIdentifier(cfg.PackageName) {
		fmt.Fprintf(e.stderr, "propindex: package name %q is not an identifier, use -pkg\n", cfg.PackageName)
		return exitUsage
	}

	descs, err := w.descriptors()
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	res, err := gen.NewGenerator(cfg).Generate(descs)
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	for _, s := range res.Skipped {
		fmt.Fprintln(e.stderr, "skipped:", s)
	}

	if dryRun {
		_, _ = e.stdout.Write(res.File.Content)
		return exitOK
	}

	written, err := gen.WriteFiles([]gen.GeneratedFile{res.File}, out)
	if err != nil {
		fmt.Fprintln(e.stderr, "propindex:", err)
		return exitFailure
	}

	for _, path := range written {
		fmt.Fprintln(e.stdout, "wrote", path)
	}

	e.log.Debug("generated", "file", res.File.Filename, "dir", out, "types", len(descs),
		"skipped", len(res.Skipped), "unchanged", len(written) == 0)

	return exitOK
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
