package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/colorpass/colorpass-go/internal/clipboard"
	"github.com/colorpass/colorpass-go/internal/crypto"
)

type generateFlags struct {
	length  int
	digits  bool
	symbols bool
	copy    bool
	count   int
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := resolveOptions(a.cfg.Generator.Options(), cmd.Flags(), f)
			if f.count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			gen := crypto.NewGenerator(nil)
			var last string
			for i := 0; i < f.count; i++ {
				password, err := gen.Generate(opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), password)
				last = password
			}

			if f.copy {
				if err := clipboard.Copy(clipboard.System{}, last); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "n", crypto.DefaultLength, "password length (clamped to 6-32)")
	cmd.Flags().BoolVarP(&f.digits, "digits", "d", false, "include digits")
	cmd.Flags().BoolVarP(&f.symbols, "symbols", "s", true, "include symbols")
	cmd.Flags().BoolVarP(&f.copy, "copy", "c", false, "copy the last password to the clipboard")
	cmd.Flags().IntVar(&f.count, "count", 1, "number of passwords to print")
	return cmd
}

// resolveOptions starts from the configured defaults and applies only the
// flags the user actually set. Length is clamped like the slider.
func resolveOptions(defaults crypto.GeneratorOptions, flags *pflag.FlagSet, f generateFlags) crypto.GeneratorOptions {
	opts := defaults
	if flags.Changed("length") {
		opts.Length = f.length
	}
	if flags.Changed("digits") {
		opts.Digits = f.digits
	}
	if flags.Changed("symbols") {
		opts.Symbols = f.symbols
	}
	opts.Length = crypto.Clamp(opts.Length)
	return opts
}
