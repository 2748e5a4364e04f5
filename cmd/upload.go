package cmd

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"pxl/internal/core/services"
	"pxl/pkg/ui"
)

var (
	uploadURLLength int
	uploadCopy      bool
)

var uploadCmd = &cobra.Command{
	Use:     "upload <file>...",
	Aliases: []string{"up"},
	Short:   "Upload one or more images (alias: up)",
	Long: `Upload images to the host, one request per file.

Files are validated locally before any bytes leave the machine: only
PNG, JPEG, GIF and SVG are accepted, each file must stay under 10 MB,
and the whole batch is refused when it would push usage past the
storage quota. An invalid file is skipped; the rest still upload.

Examples:
  pxl upload cat.png
  pxl upload *.png --copy
  pxl upload diagram.svg --url-length 12`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().IntVarP(&uploadURLLength, "url-length", "l", 0, "Generated link length (4-20, default from config)")
	uploadCmd.Flags().BoolVarP(&uploadCopy, "copy", "c", false, "Copy the first share link to the clipboard")
}

func runUpload(cmd *cobra.Command, args []string) error {
	settings := appConfig.ClientSettings
	if cmd.Flags().Changed("url-length") {
		settings.URLLength = uploadURLLength
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	uploader := services.NewUploader(fileService, settings)

	results, err := uploader.Run(getContext(), args, func(index, total int, result services.ItemResult) {
		prefix := fmt.Sprintf("[%d/%d] ", index+1, total)
		switch result.State {
		case services.ItemUploaded:
			fmt.Println(prefix + ui.FormatSuccess(result.Name))
			fmt.Println("      " + ui.FormatLink(result.ShareURL))
		case services.ItemSkipped:
			fmt.Println(prefix + ui.FormatSkip(result.Name+" skipped: "+result.Reason))
		case services.ItemFailed:
			fmt.Println(prefix + ui.FormatError(result.Name+" failed: "+result.Reason))
		}
	})
	if err != nil {
		if errors.Is(err, services.ErrQuotaExceeded) {
			fmt.Println(ui.FormatError("Storage quota exceeded"))
			fmt.Println(ui.FormatInfo(fmt.Sprintf("Quota is %d MB, free up space with 'pxl delete'", services.QuotaMB)))
		}
		return err
	}

	uploaded := 0
	var firstLink string
	for _, r := range results {
		if r.State == services.ItemUploaded {
			uploaded++
			if firstLink == "" {
				firstLink = r.ShareURL
			}
		}
	}

	fmt.Println()
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Uploaded %d of %d files", uploaded, len(results))))

	if uploadCopy && firstLink != "" {
		if err := clipboard.WriteAll(firstLink); err != nil {
			fmt.Println(ui.FormatWarning("Could not access clipboard: " + err.Error()))
		} else {
			fmt.Println(ui.FormatInfo("Share link copied to clipboard"))
		}
	}
	return nil
}
