package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start in interactive menu mode.

Use arrow keys to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Examples:
  runner menu
  runner menu --fps 60`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	for {
		id, err := tui.RunMenu(rt.ScreenW, rt.ScreenH)
		if err != nil {
			return err
		}
		if id == "" {
			return nil
		}

		v, err := lookupVariant(id)
		if err != nil {
			return err
		}
		res, err := tui.Run(v, rt, tui.Options{Logger: logger, WatchConfig: true})
		if err != nil {
			return err
		}
		logger.Info("game finished", "mode", id, "reason", res.Reason, "ticks", res.Ticks)
	}
}
