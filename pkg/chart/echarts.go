package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pxl/internal/core/domain"
)

// ExportHTML writes an interactive page with the upload series and the
// type distribution to path. Browsers render what the terminal canvas
// only approximates.
func ExportHTML(path string, buckets []domain.TimeBucket, window domain.Window, dist []domain.TypeBucket) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Uploads Over Time (%s)", window.DisplayName()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(buckets))
	series := make([]opts.LineData, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		series[i] = opts.LineData{Value: b.Count}
	}
	line.SetXAxis(labels).
		AddSeries("Uploads", series).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}),
		)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Storage by Type"}),
	)

	var pieData []opts.PieData
	for _, tb := range dist {
		if tb.Count == 0 {
			continue
		}
		pieData = append(pieData, opts.PieData{
			Name:  tb.Category.Label(),
			Value: tb.Count,
			ItemStyle: &opts.ItemStyle{
				Color: tb.Category.Color(),
			},
		})
	}
	pie.AddSeries("Types", pieData).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"45%", "70%"},
			}),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {c}",
			}),
		)

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(line, pie)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}
