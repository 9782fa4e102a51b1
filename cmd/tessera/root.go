package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tessera/internal/logger"
	pkgerrors "github.com/alexisbeaulieu97/tessera/pkg/errors"
)

type rootFlags struct {
	verbose   bool
	logFormat string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tessera",
		Short:         "Tessera is a gallery of terminal UI widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(logger.FormatConsole), "Log format (console or json)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newRangeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setupLogger(cmd *cobra.Command) error {
	format, err := logger.ParseFormat(f.logFormat)
	if err != nil {
		return pkgerrors.NewFlagError("log-format", f.logFormat, "must be console or json")
	}

	level := "info"
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	f.log = log
	return nil
}

// logger returns the command logger, or a no-op one before setup.
func (f *rootFlags) logger() *logger.Logger {
	if f.log == nil {
		return logger.Nop()
	}
	return f.log
}
