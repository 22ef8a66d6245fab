// Package play runs an interactive investigation in the terminal.
package play

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/myrjola/detectivequest/internal/config"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/game"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "game",
	Title: "Game",
}

func init() {
	Play.Flags().String("dead-end", "",
		"what happens in a room without exits: return or terminate (overrides DETECTIVE_DEAD_END_POLICY)")
}

var Play = &cobra.Command{
	Use:     "play",
	GroupID: Group.ID,
	Short:   "Investigate the mansion",
	Long: `Walks the detective through the mansion one room at a time. Clues are collected on the way and the
case ends with an accusation judged against the collected evidence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(os.LookupEnv)
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		if policy, _ := cmd.Flags().GetString("dead-end"); policy != "" {
			if err = cfg.DeadEnd.UnmarshalText([]byte(policy)); err != nil {
				return errors.Wrap(err, "parse --dead-end", slog.String("policy", policy))
			}
		}
		logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
		console := NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
		return Run(cmd.Context(), console, cfg.SessionOptions(), logger)
	},
}

// Run plays one session on the console. A player closing the input ends the game quietly.
func Run(ctx context.Context, console *Console, opts game.Options, logger *slog.Logger) error {
	console.Welcome()

	session, err := game.NewSession(ctx, console, console, console, opts, logger)
	if err != nil {
		return errors.Wrap(err, "new session")
	}
	if _, err = session.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			logger.LogAttrs(ctx, slog.LevelInfo, "input closed", slog.String("session", session.ID()))
			return nil
		}
		return errors.Wrap(err, "run session")
	}
	if err = session.Close(ctx); err != nil {
		return errors.Wrap(err, "close session")
	}
	console.Farewell()
	return nil
}
