// runner is an endless-runner game for the terminal and the desktop.
//
// Usage:
//
//	runner list                 - List available modes
//	runner play <mode>          - Play in the terminal
//	runner window <mode>        - Play in a desktop window
//	runner menu                 - Pick a mode interactively
//	runner sim <mode>           - Run a scripted headless session
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom YAML config for the mode
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a rotating file ("-" for stderr)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/jump"
	_ "github.com/vovakirdan/tui-runner/internal/games/lanes"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - dodge obstacles while the world speeds up",
	Long: `Runner is an endless-runner game with two modes: a side-scroller
where you jump and duck, and a three-lane track where you switch lanes.

Available commands:
  list     - Show all available modes
  play     - Play a mode in the terminal
  window   - Play a mode in a desktop window
  menu     - Interactive mode picker
  sim      - Run a scripted session without a display

Examples:
  runner list
  runner play jump
  runner window lanes --difficulty hard
  runner sim jump --ticks 600 --inputs "up@150"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path ("-" for stderr, empty to disable)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}
