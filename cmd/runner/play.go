package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/platform/window"
)

var flagNoWatch bool

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode in the terminal",
	Long: `Start playing the specified mode in the terminal.

Controls:
  Space/Up     - Jump
  Down         - Duck
  Left/Right   - Change lane
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit
  Ctrl+C       - Exit immediately

Difficulty options:
  easy   - Speed-ups come half as often
  normal - Config values unchanged
  hard   - Start two speed increments faster
  fixed  - Speed never changes

Edits to the mode's config file are picked up on the next restart.

Examples:
  runner play jump
  runner play lanes --difficulty hard
  runner play jump --config ./my-jump.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window <mode>",
	Short: "Play a mode in a desktop window",
	Long: `Start playing the specified mode in a desktop window.

Controls are the same as 'runner play'; holding Down keeps ducking.

Examples:
  runner window jump
  runner window lanes --fps 60`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not watch the config file for changes")
}

func runPlay(cmd *cobra.Command, args []string) error {
	v, err := lookupVariant(args[0])
	if err != nil {
		return err
	}
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	res, err := tui.Run(v, rt, tui.Options{Logger: logger, WatchConfig: !flagNoWatch})
	if err != nil {
		return err
	}
	printResult(cmd, res)
	return nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	v, err := lookupVariant(args[0])
	if err != nil {
		return err
	}
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	res, err := window.Run(v, rt, logger)
	if err != nil {
		return err
	}
	printResult(cmd, res)
	return nil
}

func printResult(cmd *cobra.Command, res engine.Result) {
	if res.Reason == engine.EndNone {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Game ended (%s) after %d ticks at velocity %d, level %d\n",
		res.Reason, res.Ticks, res.Velocity, res.Level)
}
