package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/npillmayer/viewsfrom"
	"github.com/npillmayer/viewsfrom/animate"
	"github.com/npillmayer/viewsfrom/animate/tween"
	"github.com/npillmayer/viewsfrom/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

//go:embed animations.yaml
var defaultAnimations string

// maxPlayTime limits the simulated clock.
const maxPlayTime = time.Minute

// AnimateOptions holds flags for the animate command.
type AnimateOptions struct {
	*RootOptions
	Query      QueryOptions
	Delay      time.Duration
	Animations string // YAML file, empty for the built-in library
	Name       string
	Frame      time.Duration
	Show       string // visibility forced before animation
	Metrics    bool
}

// NewAnimateCommand creates the animate command.
func NewAnimateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnimateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Run a staggered animation on views of the sample tree",
		Long: `Run a staggered animation on views of the sample tree.

Views are selected with the flags of the find command. Every view gets a
fresh animation from the animation library, delayed by --delay more than its
predecessor. The clock is simulated in steps of --frame.

Examples:
  viewsfrom animate --delay 250ms
  viewsfrom animate --name pop --visibility visible --prune --metrics
  viewsfrom animate --animations my.yaml --name wobble`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnimate(opts, cmd.OutOrStdout())
		},
	}

	opts.Query.addFlags(cmd.Flags())
	cmd.Flags().DurationVar(&opts.Delay, "delay", 100*time.Millisecond, "delay between each view")
	cmd.Flags().StringVar(&opts.Animations, "animations", "", "YAML file with animation definitions")
	cmd.Flags().StringVar(&opts.Name, "name", "fade_in", "name of the animation definition")
	cmd.Flags().DurationVar(&opts.Frame, "frame", 16*time.Millisecond, "frame time of the simulated clock")
	cmd.Flags().StringVar(&opts.Show, "show", "", "set visibility of every view before animation")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "print tween metrics")

	return cmd
}

func loadLibrary(path string) (*tween.Library, error) {
	if path == "" {
		return tween.LoadLibrary(strings.NewReader(defaultAnimations))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tween.LoadLibrary(f)
}

func runAnimate(opts *AnimateOptions, w io.Writer) error {
	if opts.Frame <= 0 {
		return fmt.Errorf("frame time must be positive, is %v", opts.Frame)
	}
	lib, err := loadLibrary(opts.Animations)
	if err != nil {
		return err
	}
	f, err := opts.Query.finder(viewsfrom.Sample())
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	player := tween.NewPlayer(tween.WithMetrics(tween.NewMetrics(reg)))
	sched, err := f.AnimateWithResource(lib, opts.Name, player)
	if err != nil {
		return err
	}
	if opts.Show != "" {
		vis, err := view.ParseVisibility(opts.Show)
		if err != nil {
			return err
		}
		sched.WithVisibilityBeforeAnimation(vis)
	}
	var completed time.Duration
	sched.WithDelayBetweenEachChild(opts.Delay).WithEndAction(func() {
		completed = player.Now()
	})
	views, err := f.Find() // the same views the scheduler will resolve
	if err != nil {
		return err
	}
	if err = sched.Start(); err != nil {
		return err
	}
	fmt.Fprintf(w, "run %s\n", sched.RunID())
	for i, v := range views {
		offset := time.Duration(0)
		if a, ok := v.(interface{ Animation() view.Animation }); ok && a.Animation() != nil {
			offset = a.Animation().StartOffset()
		}
		fmt.Fprintf(w, "%d/%d #%d %v %s, starts at %v\n", i+1, len(views), v.ID(), v.Tag(), v.Visibility(), offset)
	}
	frames := 0
	for sched.State() != animate.Completed && player.Now() < maxPlayTime {
		player.Update(opts.Frame)
		frames++
	}
	if sched.State() != animate.Completed {
		return fmt.Errorf("animation did not complete within %v", maxPlayTime)
	}
	fmt.Fprintf(w, "completed at %v after %d frames\n", completed, frames)
	if opts.Metrics {
		return printMetrics(reg, w)
	}
	return nil
}

func printMetrics(reg prometheus.Gatherer, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			value := m.GetGauge().GetValue()
			if c := m.GetCounter(); c != nil {
				value = c.GetValue()
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}
