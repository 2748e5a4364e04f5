package cmd

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/internal/core/services"
	"pxl/pkg/chart"
	"pxl/pkg/ui"
)

var (
	chartWindow string
	chartHTML   string
	chartLive   bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw the uploads-over-time chart",
	Long: `Draw upload counts over a time window as a terminal line chart.

The 24h window bins by hour; the day windows bin by calendar day. An
empty window draws a flat baseline. With --live the chart takes over
the terminal and redraws on resize; keys 1-4 switch windows, q quits.

Examples:
  pxl chart
  pxl chart --window 30d
  pxl chart --window 24h --live
  pxl chart --html uploads.html`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartWindow, "window", "w", "7d", "Time window (24h, 7d, 14d, 30d)")
	chartCmd.Flags().StringVar(&chartHTML, "html", "", "Export the chart to this HTML file instead of drawing")
	chartCmd.Flags().BoolVar(&chartLive, "live", false, "Full-screen chart that redraws on resize")
}

func runChart(cmd *cobra.Command, args []string) error {
	window, err := domain.ParseWindow(chartWindow)
	if err != nil {
		return err
	}

	result, err := registry.Fetch(getContext())
	if err != nil {
		return err
	}

	if chartHTML != "" {
		buckets := services.Bin(result.Files, window, time.Now())
		dist := services.Distribution(result.Files)
		if err := chart.ExportHTML(chartHTML, buckets, window, dist); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Exported chart to " + chartHTML))
		return nil
	}

	if chartLive {
		return runLiveChart(result.Files, window)
	}

	if result.Degraded {
		fmt.Println(ui.FormatBanner("Backend unreachable, showing sample data"))
		fmt.Println()
	}
	buckets := services.Bin(result.Files, window, time.Now())
	canvas := chart.RenderLine(buckets, chart.DefaultLineOptions(window))
	fmt.Print(canvas.Render())
	return nil
}

// runLiveChart owns the terminal until quit, re-rendering the chart at
// the current screen size after every resize or window switch.
func runLiveChart(files []domain.FileRecord, window domain.Window) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	draw := func() {
		screen.Clear()
		width, height := screen.Size()

		buckets := services.Bin(files, window, time.Now())
		opts := chart.DefaultLineOptions(window)
		opts.Width = width
		opts.Height = height - 1
		canvas := chart.RenderLine(buckets, opts)

		for y := 0; y < canvas.Height; y++ {
			for x := 0; x < canvas.Width; x++ {
				cell := canvas.At(x, y)
				style := tcell.StyleDefault
				if cell.Color != "" {
					style = style.Foreground(tcell.GetColor(cell.Color))
				}
				screen.SetContent(x, y, cell.Ch, nil, style)
			}
		}

		footer := "1:24h  2:7d  3:14d  4:30d  q:quit"
		for i, ch := range footer {
			screen.SetContent(i, height-1, ch, nil, tcell.StyleDefault.Dim(true))
		}
		screen.Show()
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			switch ev.Rune() {
			case '1':
				window = domain.Window24h
			case '2':
				window = domain.Window7d
			case '3':
				window = domain.Window14d
			case '4':
				window = domain.Window30d
			default:
				continue
			}
			draw()
		}
	}
}
