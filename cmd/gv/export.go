package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/econlens/gdp_viewer/pkg/export"
)

var formatLabels = map[export.Format]string{
	export.FormatMarkdown: "Markdown report",
	export.FormatSQLite:   "SQLite database",
	export.FormatSVG:      "SVG charts",
	export.FormatPNG:      "PNG charts",
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		formats string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset as markdown, SQLite, SVG or PNG",
		Long: "Write static renditions of the catalog into a directory.\n\n" +
			"Formats: md, sqlite, svg, png or all. When --format is omitted and\n" +
			"stdin is a terminal the formats are picked interactively.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, err := resolveFormats(formats)
			if err != nil {
				return err
			}

			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.close()

			runner := export.NewRunner(export.NewDataset(e.cat, e.cfg.Palette), outDir)
			runner.SetLogger(e.logger)

			results, err := runner.Run(cmd.Context(), selected)
			for _, res := range results {
				if res.Err != nil {
					continue
				}
				for _, f := range res.Files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&formats, "format", "f", "", "comma separated formats: md, sqlite, svg, png, all")
	cmd.Flags().StringVarP(&outDir, "out", "o", "gv-export", "output directory")
	return cmd
}

// resolveFormats parses the flag, falling back to a prompt on a terminal and
// to every format otherwise.
func resolveFormats(flag string) ([]export.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return export.ParseFormats(flag)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return export.AllFormats, nil
	}
	return promptFormats()
}

func promptFormats() ([]export.Format, error) {
	var picked []export.Format
	options := make([]huh.Option[export.Format], 0, len(export.AllFormats))
	for _, f := range export.AllFormats {
		options = append(options, huh.NewOption(formatLabels[f], f).Selected(true))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[export.Format]().
			Title("Export formats").
			Options(options...).
			Validate(func(v []export.Format) error {
				if len(v) == 0 {
					return errors.New("pick at least one format")
				}
				return nil
			}).
			Value(&picked),
	))
	if err := form.Run(); err != nil {
		return nil, err
	}
	return picked, nil
}
