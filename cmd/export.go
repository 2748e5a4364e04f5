package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/pkg/ui"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download all your files as a zip archive",
	Long: `Download a zip archive of every file on your account.

Examples:
  pxl export
  pxl export -o backup.zip`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "pxl-export.zip", "Destination path for the archive")
}

func runExport(cmd *cobra.Command, args []string) error {
	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutput, err)
	}
	defer f.Close()

	fmt.Println(ui.FormatInfo("Downloading archive..."))

	n, err := fileService.Export(getContext(), f)
	if err != nil {
		os.Remove(exportOutput)
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Saved %s (%s)", exportOutput, domain.FormatSize(n))))
	return nil
}
