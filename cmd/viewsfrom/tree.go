package main

import (
	"fmt"

	"github.com/npillmayer/viewsfrom"
	"github.com/npillmayer/viewsfrom/viewdbg"
	"github.com/spf13/cobra"
)

// TreeOptions holds flags for the tree command.
type TreeOptions struct {
	*RootOptions
	Dot bool
}

// NewTreeCommand creates the tree command.
func NewTreeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TreeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the sample view tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := viewsfrom.Sample()
			if opts.Dot {
				return viewdbg.ToGraphViz(root, cmd.OutOrStdout())
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), viewdbg.Print(root))
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Dot, "dot", false, "print GraphViz DOT instead of text")

	return cmd
}
