package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/colorpass/colorpass-go/internal/clipboard"
	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/logging"
	"github.com/colorpass/colorpass-go/internal/service"
	"github.com/colorpass/colorpass-go/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run one of the apps in the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			// The screen belongs to the UI; logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				w = f
			}
			logging.Setup(w, a.cfg.Log)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file while the UI runs")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "switcher",
			Short: "Background color switcher",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return tui.RunSwitcher(service.NewBackgroundService(a.cfg.InitialColor()))
			},
		},
		&cobra.Command{
			Use:   "generator",
			Short: "Random password generator",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := service.NewGeneratorService(crypto.NewGenerator(nil), a.cfg.Generator.Options(), clipboard.System{})
				if err != nil {
					return err
				}
				return tui.RunGenerator(svc)
			},
		},
	)
	return cmd
}
