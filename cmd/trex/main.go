// trex is a terminal rendition of the dinosaur runner game.
//
// Usage:
//
//	trex play             - Play in the current terminal
//	trex scores           - Show high scores and run history
//	trex serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.trex/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trex",
	Short: "T-Rex Runner - endless runner in your terminal",
	Long: `T-Rex Runner is a terminal endless runner: jump cacti, duck under
pterodactyls, and survive as the speed ramps up and night falls.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores and run history
  serve    - Start SSH server for remote play

Examples:
  trex play
  trex play --difficulty hard
  trex scores
  trex serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trex/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
