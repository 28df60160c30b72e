package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/econlens/gdp_viewer/pkg/analysis"
	"github.com/econlens/gdp_viewer/pkg/ui"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the 2023 GDP distribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.close()

			printDistribution(cmd.OutOrStdout(), analysis.Distribution(e.cat.Cities()))
			return nil
		},
	}
}

func printDistribution(w io.Writer, points []analysis.DistributionPoint) {
	shares := analysis.Shares(points)
	fmt.Fprintf(w, "%s %s %s %s\n",
		ui.PadRight("城市", 8), ui.PadRight("区域", 6), ui.PadLeft("2023 GDP", 10), ui.PadLeft("占比", 7))
	for i, p := range points {
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			ui.PadRight(p.Name, 8),
			ui.PadRight(p.Region.Label(), 6),
			ui.PadLeft(fmt.Sprintf("%.2f", p.Value), 10),
			ui.PadLeft(fmt.Sprintf("%.1f%%", shares[i]), 7),
			ui.RenderSparkline(shares[i]/100, 20))
	}
	fmt.Fprintf(w, "%s %s %s\n", ui.PadRight("合计", 8), ui.PadRight("", 6), ui.PadLeft(fmt.Sprintf("%.2f", analysis.Total(points)), 10))
}
