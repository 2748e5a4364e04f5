package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/internal/core/services"
	"pxl/pkg/ui"
)

var (
	listSearch string
	listType   string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your uploaded files (alias: ls)",
	Long: `List your uploaded files with optional filtering and sorting.

Search matches the original filename, case-insensitively.

Examples:
  pxl list
  pxl list --search screenshot
  pxl list --type png --sort largest`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by original filename")
	listCmd.Flags().StringVarP(&listType, "type", "t", "all",
		"Filter by type ("+strings.Join(services.TypeFilters, ", ")+")")
	listCmd.Flags().StringVar(&listSort, "sort", "newest",
		"Sort order ("+strings.Join(services.SortOrders, ", ")+")")
}

func runList(cmd *cobra.Command, args []string) error {
	// The gallery never substitutes sample data; an unreachable backend
	// surfaces as an error here, unlike the dashboard views.
	all, err := fileService.List(getContext())
	if err != nil {
		return err
	}

	files, err := services.FilterAndSort(all, services.GalleryRequest{
		Search:     listSearch,
		TypeFilter: listType,
		SortBy:     listSort,
	})
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Println(ui.FormatWarning("No files found"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Align: "right"},
		{Header: "NAME", Width: 20, MaxWidth: 36},
		{Header: "TYPE"},
		{Header: "SIZE", Align: "right"},
		{Header: "UPLOADED"},
	})
	for _, f := range files {
		table.AddRow([]string{
			strconv.FormatInt(f.ID, 10),
			f.OriginalName,
			domain.Classify(f.FileType).Label(),
			domain.FormatSize(f.FileSize),
			f.DisplayDate(),
		})
	}

	fmt.Print(table.Render())
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d files", len(files))))
	return nil
}
