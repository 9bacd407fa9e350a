package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagTicks    int64
	flagInputs   string
	flagRealtime bool
	flagWidth    int
	flagHeight   int
)

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Run a scripted session without a display",
	Long: `Run a session headlessly with prerecorded input, then print the
result and the final frame as text.

Inputs are comma-separated "command@tick" or "command@from-to" entries.
Commands: up, down, left, right. The run is deterministic: --seed is used
as given, including 0.

Examples:
  runner sim jump --seed 1 --inputs "up@150"
  runner sim lanes --seed 7 --ticks 900 --inputs "left@100,right@300-301"
  runner sim jump --realtime --log-level debug --log-file -`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().Int64Var(&flagTicks, "ticks", 3000, "Request a quit after this many ticks; the session ends on the next tick")
	simCmd.Flags().StringVar(&flagInputs, "inputs", "", "Scripted input")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Frame width in characters")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Frame height in characters")
}

// simOptions are the inputs of one headless run.
type simOptions struct {
	rt       core.RuntimeConfig
	maxTicks int64
	script   *engine.Script
	realtime bool
	width    int
	height   int
	logger   *log.Logger
}

func runSim(cmd *cobra.Command, args []string) error {
	v, err := lookupVariant(args[0])
	if err != nil {
		return err
	}
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	script, err := engine.ParseScript(flagInputs)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return simulate(ctx, cmd.OutOrStdout(), v, simOptions{
		rt:       rt,
		maxTicks: flagTicks,
		script:   script,
		realtime: flagRealtime,
		width:    flagWidth,
		height:   flagHeight,
		logger:   logger,
	})
}

// tickLimit requests a quit once max ticks have run. The quit event is
// drained on the following tick, so the result reports max+1 ticks.
type tickLimit struct {
	loop *engine.Loop
	max  int64
	in   engine.InputSource
}

func (t tickLimit) Poll() core.Command {
	if t.loop.Tick() >= t.max {
		t.loop.RequestQuit()
	}
	return t.in.Poll()
}

func simulate(ctx context.Context, w io.Writer, v registry.Variant, opts simOptions) error {
	s, err := v.NewSession(opts.rt)
	if err != nil {
		return err
	}

	viewport := core.NewViewport(s.Playfield, opts.width, opts.height)
	loop, err := engine.NewLoop(s.Sim, s.Settings,
		engine.WithLogger(opts.logger),
		engine.WithRenderer(viewport),
	)
	if err != nil {
		return err
	}

	var pacer engine.Pacer
	if opts.realtime {
		p := engine.NewTickerPacer(s.Settings.TickRate)
		defer p.Stop()
		pacer = p
	}

	res, err := loop.Run(ctx, tickLimit{loop: loop, max: opts.maxTicks, in: opts.script}, pacer)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "mode=%s seed=%d reason=%s ticks=%d velocity=%d level=%d\n",
		v.ID(), opts.rt.Seed, res.Reason, res.Ticks, res.Velocity, res.Level)
	fmt.Fprintln(w, viewport.Frame().String())
	return nil
}
