package main

import (
	"fmt"
	"os"

	"github.com/jaminalder/noughts/internal/app"
	"github.com/jaminalder/noughts/internal/console"
	"github.com/jaminalder/noughts/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	autoSide string
	noColor  bool
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game (default)",
		RunE:  runPlay,
	}
	addPlayFlags(playCmd)
	rootCmd.AddCommand(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&autoSide, "auto", "a", "off", "side the computer plays: O, X or off")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored pieces")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	side, err := domain.ParseSide(autoSide)
	if err != nil {
		return fmt.Errorf("--auto: %w", err)
	}

	sess := app.NewSession(logger)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	c := console.New(sess, cmd.OutOrStdout(), console.Config{
		Color:  !noColor,
		Prompt: interactive,
	}, logger)

	if side != domain.NoSide {
		c.Exec("auto " + side.Symbol())
	}
	logger.Info("session started", "game", sess.State().ID, "auto", side, "interactive", interactive)
	return c.Run(cmd.InOrStdin())
}
