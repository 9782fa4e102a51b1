package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tessera/internal/config"
	"github.com/alexisbeaulieu97/tessera/internal/logger"
	"github.com/alexisbeaulieu97/tessera/internal/tui"
)

type galleryOptions struct {
	configPath string
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the widget gallery",
		Long: `Launch the interactive widget gallery. Without --config the built-in
gallery document is used. When stdout is not a terminal every widget is
rendered once and the command exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := flags.logger().With("command", "gallery")

			cfg, err := loadGallery(opts.configPath)
			if err != nil {
				log.Error(err, "failed to load gallery config")
				return err
			}

			return runGallery(cmd.OutOrStdout(), cfg, log)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a gallery YAML document")

	return cmd
}

func loadGallery(path string) (*config.Gallery, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func runGallery(out io.Writer, cfg *config.Gallery, log *logger.Logger) error {
	m, err := tui.NewModel(cfg, log)
	if err != nil {
		return fmt.Errorf("build gallery: %w", err)
	}

	if !isTerminal(out) {
		log.Debug("output is not a terminal, rendering static gallery")
		_, err := fmt.Fprintln(out, m.StaticView())
		return err
	}

	log.Info("launching gallery")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("run gallery: %w", err)
	}
	log.Info("gallery closed")

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
