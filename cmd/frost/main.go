package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/Carmen-Shannon/frost/internal/config"
)

const usage = `usage: frost [-config file] [-log-level level] <command> [flags] [model...]

commands:
  view      open a model in the viewer (default)
  dump      print every element of a model
  stats     load models and print vertex, triangle and bounds summaries
  snapshot  render a model to a .webp or .png image without a window
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

// run parses global flags, resolves the config and dispatches to a command.
func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("frost", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	configFile := global.String("config", "", "path to a TOML config file")
	logLevel := global.String("log-level", "", "debug, info, warn or error (default: info)")
	if err := global.Parse(args); err != nil {
		return err
	}

	name, rest := "view", global.Args()
	if len(rest) > 0 {
		if _, ok := commands[rest[0]]; ok {
			name, rest = rest[0], rest[1:]
		}
	}
	cmd := commands[name]

	var cfg config.Config
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("frost "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.Flags{LogLevel: *logLevel}
	cmd.flags(fs, &flags)
	if err := fs.Parse(rest); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) > 0 {
		flags.Model = paths[0]
	}

	cfg.Resolve(flags)
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	if len(paths) == 0 && cfg.Model != "" {
		paths = []string{cfg.Model}
	}
	if len(paths) == 0 {
		return fmt.Errorf("%s: no model given", name)
	}
	return cmd.run(&cfg, paths, stdout)
}
