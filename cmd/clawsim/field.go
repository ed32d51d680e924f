package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/decker502/funclaw/pkg/claw"
	"github.com/decker502/funclaw/pkg/config"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Print the item field generated for a seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printField(cfg, seed, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(fieldCmd)
}

// printField 生成物品场并以表格输出
func printField(cfg *config.ClawConfig, seed uint64, out io.Writer) error {
	geo := claw.GeometryFromConfig(cfg)
	region := geo.SpawnRegion()
	items := claw.GenerateItems(cfg.ItemCount, cfg.Palette, region, newRand(seed), claw.NewIDSource())

	fmt.Fprintf(out, "spawn region x=[%.1f, %.1f] y=[%.1f, %.1f], claw line y=%.1f\n",
		region.MinX, region.MaxX, region.Top, region.Top+region.Height, geo.ClawBottomY())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYMBOL\tX\tY\tCENTER")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t%.1f\n", item.ID, item.Symbol, item.X, item.Y, item.X+geo.ItemSize/2)
	}
	return w.Flush()
}
