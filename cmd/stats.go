package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/internal/core/services"
	"pxl/pkg/chart"
	"pxl/pkg/ui"
)

var statsHTML string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics and the type distribution",
	Long: `Show account usage: file count, uploads today, storage used
against the quota, and a donut chart of file types.

Examples:
  pxl stats
  pxl stats --html usage.html`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsHTML, "html", "", "Also export interactive charts to this HTML file")
}

func runStats(cmd *cobra.Command, args []string) error {
	result, err := registry.Fetch(getContext())
	if err != nil {
		return err
	}
	if result.Degraded {
		fmt.Println(ui.FormatBanner("Backend unreachable, showing sample data"))
		fmt.Println()
	}

	now := time.Now()
	summary := services.Aggregate(result.Files, now)
	dist := services.Distribution(result.Files)

	fmt.Println(ui.FormatTitle("Usage"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Total Files", fmt.Sprintf("%d", summary.TotalFiles)))
	fmt.Println(ui.RenderKeyValue("Uploads Today", fmt.Sprintf("%d", summary.TodayCount)))
	fmt.Println(ui.RenderKeyValue("Storage Used",
		fmt.Sprintf("%.2f MB of %d MB (%.1f%%)", summary.UsedMB, services.QuotaMB, summary.UsedPercent())))
	fmt.Println(ui.RenderKeyValue("Free", fmt.Sprintf("%.2f MB", summary.FreeMB)))
	if summary.OverQuota {
		fmt.Println(ui.FormatWarning("Account is over quota, uploads will be refused"))
	}
	fmt.Println()

	canvas := chart.RenderDonut(donutSegments(dist), summary.TotalFiles, chart.DefaultDonutOptions())
	fmt.Print(canvas.Render())
	fmt.Println()

	for _, entry := range services.Legend(dist) {
		swatch := ui.CategoryStyle(entry.Color).Render("■")
		fmt.Printf("  %s %s %s\n", swatch, entry.Label, ui.StyleMuted.Render(fmt.Sprintf("(%d)", entry.Count)))
	}

	if statsHTML != "" {
		buckets := services.Bin(result.Files, domain.Window7d, now)
		if err := chart.ExportHTML(statsHTML, buckets, domain.Window7d, dist); err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(ui.FormatSuccess("Exported charts to " + statsHTML))
	}
	return nil
}

// donutSegments converts the distribution slices to drawable segments.
func donutSegments(dist []domain.TypeBucket) []chart.Segment {
	slices := services.Slices(dist)
	segments := make([]chart.Segment, len(slices))
	for i, s := range slices {
		segments[i] = chart.Segment{
			Label: s.Category.Label(),
			Count: s.Count,
			Color: s.Category.Color(),
			Start: s.Start,
			Sweep: s.Sweep,
		}
	}
	return segments
}
