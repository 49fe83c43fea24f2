// chefgrid is a terminal puzzle platform built around a grid-based
// sandwich-making game.
//
// Usage:
//
//	chefgrid list              - List available games
//	chefgrid play <game>       - Play a game
//	chefgrid menu              - Start menu to pick games interactively
//	chefgrid serve             - Start SSH server for remote play
//	chefgrid scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chefgrid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/chef-grid/internal/games/chef"
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
	Use:   "chefgrid",
	Short: "Chef Grid - Make sandwiches in your terminal",
	Long: `Chef Grid is a terminal puzzle platform. Steer the chef around a
grid, gather peanut butter, jelly, and bread from the counter edge, and
deliver the finished sandwich to the goal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  chefgrid list
  chefgrid play chef
  chefgrid menu
  chefgrid serve --ssh :2222
  chefgrid scores chef`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chefgrid/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
