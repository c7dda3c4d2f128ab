package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Trace       string // trace level
	Destination string // trace output
}

// tracers are the trace keys of the library packages.
var tracers = []string{
	"viewsfrom.view",
	"viewsfrom.filter",
	"viewsfrom.query",
	"viewsfrom.animate",
	"viewsfrom.tween",
}

// NewRootCommand creates the root command for the viewsfrom CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "viewsfrom",
		Short: "Query and animate a sample view tree",
		Long: `Query and animate a sample view tree.

The sample tree is root{A, B{C, D(invisible)}, E{F, G(gone){H}}}, with
identifiers 0 to 8 in pre-order and the letters as tags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureTracing(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Trace, "trace", "error", "trace level (error|info|debug)")
	cmd.PersistentFlags().StringVar(&opts.Destination, "trace-to", "", "trace destination (stdout|stderr|file URI)")

	cmd.AddCommand(NewTreeCommand(opts))
	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewAnimateCommand(opts))

	return cmd
}

// configureTracing installs a Go-logger based root tracer, configured with
// the trace level for every library package.
func configureTracing(opts *RootOptions) error {
	switch strings.ToLower(opts.Trace) {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("invalid trace level %q: must be one of error, info, debug", opts.Trace)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"tracelevel.root": opts.Trace,
	}
	if opts.Destination != "" {
		conf["tracing.destination"] = opts.Destination
	}
	for _, key := range tracers {
		conf["tracelevel."+key] = opts.Trace
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
