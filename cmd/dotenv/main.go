// Command dotenv loads a definition file into the process environment and
// prints the resulting variables.
//
// Usage:
//
//	dotenv [-d dir] [-f file] [-o text|json|yaml|toml] [--sources] [--secret glob]... [--required] [--env-prefix P] [-v]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"charm.land/log/v2"
	"github.com/spf13/pflag"

	"github.com/Azhovan/dotenv"
	"github.com/Azhovan/dotenv/envstore"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	dir       string
	file      string
	output    string
	sources   bool
	secrets   []string
	required  bool
	envPrefix string
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags

	fs := pflag.NewFlagSet("dotenv", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.dir, "dir", "d", ".", "Directory containing the definition file")
	fs.StringVarP(&f.file, "file", "f", dotenv.DefaultFile, "Definition file name")
	fs.StringVarP(&f.output, "output", "o", "text", "Output format: text, json, yaml or toml")
	fs.BoolVar(&f.sources, "sources", false, "Show the line and views of each variable")
	fs.StringSliceVar(&f.secrets, "secret", nil, "Redact values of names matching glob (repeatable)")
	fs.BoolVar(&f.required, "required", false, "Fail when the definition file is missing")
	fs.StringVar(&f.envPrefix, "env-prefix", "", "Print process environment variables with this prefix after loading")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Debug output")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: dotenv [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return f, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "dotenv", Level: log.WarnLevel})
	if f.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	format, err := dotenv.ParseFormat(f.output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	loader := dotenv.New(f.dir, dotenv.Options{
		File:     f.file,
		Required: f.required,
		Logger:   logger,
	})

	res, err := loader.LoadResult()
	if err != nil {
		logger.Error("load failed", "err", err)
		return exitError
	}
	if res == nil {
		logger.Warn("no definition file found", "path", loader.Path())
		return exitOK
	}

	opts := []dotenv.DumpOption{format, dotenv.WithSecrets(f.secrets...)}

	if f.envPrefix != "" {
		res = environment(f.envPrefix)
	} else if f.sources {
		opts = append(opts, dotenv.WithSources())
	}

	if err := dotenv.Dump(stdout, res, opts...); err != nil {
		logger.Error("dump failed", "err", err)
		return exitError
	}
	return exitOK
}

// environment wraps the matching process environment as a result so it can be dumped.
func environment(prefix string) *dotenv.Result {
	vars := envstore.Filter(os.Environ(), envstore.Options{Prefix: prefix})

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	res := &dotenv.Result{Path: "environment"}
	for _, name := range names {
		res.Assignments = append(res.Assignments, dotenv.Assignment{Name: name, Value: vars[name]})
	}
	return res
}
