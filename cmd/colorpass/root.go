package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/colorpass/colorpass-go/internal/config"
	"github.com/colorpass/colorpass-go/internal/logging"
)

type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "colorpass",
		Short:         "Background color switcher and random password generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newTUICmd(a),
		newGenerateCmd(a),
		newColorsCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.Setup(cmd.ErrOrStderr(), cfg.Log)
	return nil
}
