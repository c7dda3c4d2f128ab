package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/viewsfrom"
	"github.com/npillmayer/viewsfrom/query"
	"github.com/npillmayer/viewsfrom/view"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// QueryOptions holds the flags describing a query on the sample tree.
type QueryOptions struct {
	Visibility   []string
	Tags         []string
	TagRegex     []string
	IDs          []int
	Negate       []string // names of filters to negate
	ExcludeTags  []string
	Prune        bool
	IncludeRoots bool
}

func (q *QueryOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&q.Visibility, "visibility", nil, "keep views with visibility (visible|invisible|gone)")
	flags.StringSliceVar(&q.Tags, "tag", nil, "keep views with tag")
	flags.StringSliceVar(&q.TagRegex, "tag-regex", nil, "keep views with a tag matching a regular expression")
	flags.IntSliceVar(&q.IDs, "id", nil, "keep views with identifier")
	flags.StringSliceVar(&q.Negate, "not", nil, "negate filters (visibility|tag|tag-regex|id)")
	flags.StringSliceVar(&q.ExcludeTags, "exclude-tag", nil, "exclude views with tag")
	flags.BoolVar(&q.Prune, "prune", false, "do not descend into groups filtered out")
	flags.BoolVar(&q.IncludeRoots, "include-roots", false, "include the root in the result")
}

func (q *QueryOptions) negated(filter string) bool {
	for _, n := range q.Negate {
		if n == filter {
			return true
		}
	}
	return false
}

// finder builds a Finder for root from the flags.
func (q *QueryOptions) finder(root view.Group) (*query.Finder, error) {
	for _, n := range q.Negate {
		switch n {
		case "visibility", "tag", "tag-regex", "id":
		default:
			return nil, fmt.Errorf("cannot negate unknown filter %q", n)
		}
	}
	f := viewsfrom.From(root)
	if q.IncludeRoots {
		f.IncludingRoots()
	}
	if q.Prune {
		f.ExcludingChildrenOfFilteredGroups()
	}
	if len(q.Visibility) > 0 {
		vs := make([]view.Visibility, len(q.Visibility))
		for i, name := range q.Visibility {
			vis, err := view.ParseVisibility(name)
			if err != nil {
				return nil, err
			}
			vs[i] = vis
		}
		q.not(f, "visibility").WithVisibility(vs...)
	}
	if len(q.Tags) > 0 {
		q.not(f, "tag").WithTag(q.Tags...)
	}
	if len(q.TagRegex) > 0 {
		q.not(f, "tag-regex").WithTagRegex(q.TagRegex...)
	}
	if len(q.IDs) > 0 {
		q.not(f, "id").WithID(q.IDs...)
	}
	if len(q.ExcludeTags) > 0 {
		excluded, err := viewsfrom.From(root).IncludingRoots().WithTag(q.ExcludeTags...).Find()
		if err != nil {
			return nil, err
		}
		if len(excluded) > 0 {
			f.ExcludeViews(excluded...)
		}
	}
	return f, f.Err()
}

func (q *QueryOptions) not(f *query.Finder, filter string) *query.Finder {
	if q.negated(filter) {
		return f.Not()
	}
	return f
}

// FindOptions holds flags for the find command.
type FindOptions struct {
	*RootOptions
	Query QueryOptions
	Async bool
}

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FindOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find views of the sample tree",
		Long: `Find views of the sample tree.

Filters given by flags are combined with AND. Every filter may be negated
by naming it with --not.

Examples:
  viewsfrom find --visibility gone
  viewsfrom find --not visibility --visibility gone
  viewsfrom find --exclude-tag G --prune`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(opts, cmd.OutOrStdout())
		},
	}

	opts.Query.addFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.Async, "async", false, "walk the tree asynchronously")

	return cmd
}

func runFind(opts *FindOptions, w io.Writer) error {
	f, err := opts.Query.finder(viewsfrom.Sample())
	if err != nil {
		return err
	}
	var views []view.View
	if opts.Async {
		views, err = f.Promise()()
	} else {
		views, err = f.Find()
	}
	if err != nil {
		return err
	}
	for i, v := range views {
		fmt.Fprintf(w, "%d/%d #%d %v %s\n", i+1, len(views), v.ID(), v.Tag(), v.Visibility())
	}
	return nil
}
