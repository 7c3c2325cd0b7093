// Package main provides the crossword CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossword",
	Short: "Build a crossword from your own clues",
	Long: `Crossword collects clue sentences and their answers, then quizzes you
on each clue and places every correct answer on a 10x10 grid.
Play in the terminal or run it as a Telegram bot.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "crossword %s\n", version)
	},
}
