package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/detectivequest/cmd/detectivequest/casefile"
	"github.com/myrjola/detectivequest/cmd/detectivequest/play"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/spf13/cobra"
)

func init() {
	// The .env file is optional; the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(play.Group)
	rootCmd.AddCommand(play.Play)
	rootCmd.AddGroup(casefile.Group)
	rootCmd.AddCommand(casefile.Map)
	rootCmd.AddCommand(casefile.Suspects)
}

var rootCmd = &cobra.Command{
	Use:          "detectivequest",
	Short:        "Explore the mansion, collect clues and accuse the culprit",
	Long:         `Detective Quest is a text investigation game played in the terminal.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
