package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/pkg/ui"
)

var (
	viewSave string
	viewCopy bool
	viewOpen bool
)

var viewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Show public info for a file, download or open it",
	Long: `Show the public viewer info for a file by id.

With an id this works without logging in, exactly like the public
share page. With no argument an interactive picker opens over your
own files, which requires a session. Anonymous uploads show no
uploader name.

Examples:
  pxl view
  pxl view 42
  pxl view 42 --save cat.png
  pxl view 42 --copy
  pxl view 42 --open`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewSave, "save", "s", "", "Download the image to this path")
	viewCmd.Flags().BoolVarP(&viewCopy, "copy", "c", false, "Copy the share link to the clipboard")
	viewCmd.Flags().BoolVarP(&viewOpen, "open", "O", false, "Open the share link in the browser")
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var id int64
	if len(args) == 1 {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid file id %q", args[0])
		}
		id = parsed
	} else {
		picked, err := pickFile(ctx)
		if err != nil {
			return err
		}
		if picked == nil {
			return nil
		}
		id = picked.ID
	}

	info, err := fileService.Info(ctx, id)
	if err != nil {
		return err
	}

	shareURL := apiClient.ShareURL(info.Filename)

	fmt.Println(ui.RenderKeyValue("Name", info.OriginalName))
	fmt.Println(ui.RenderKeyValue("Type", info.FileType))
	fmt.Println(ui.RenderKeyValue("Size", domain.FormatSize(info.FileSize)))
	fmt.Println(ui.RenderKeyValue("Uploaded", info.DisplayDate()))
	if info.UploaderName != "" {
		fmt.Println(ui.RenderKeyValue("Uploader", info.UploaderName))
	}
	fmt.Println(ui.RenderKeyValue("Link", ui.FormatLink(shareURL)))

	if viewSave != "" {
		f, err := os.Create(viewSave)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", viewSave, err)
		}
		defer f.Close()

		n, err := fileService.Download(ctx, id, f)
		if err != nil {
			os.Remove(viewSave)
			return err
		}
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Saved %s (%s)", viewSave, domain.FormatSize(n))))
	}

	if viewCopy {
		if err := clipboard.WriteAll(shareURL); err != nil {
			fmt.Println(ui.FormatWarning("Could not access clipboard: " + err.Error()))
		} else {
			fmt.Println(ui.FormatInfo("Share link copied to clipboard"))
		}
	}

	if viewOpen {
		if err := openBrowser(shareURL); err != nil {
			fmt.Println(ui.FormatWarning("Could not open browser: " + err.Error()))
		}
	}
	return nil
}

// pickFile opens the interactive picker over the user's files. A nil
// record with nil error means the user cancelled or owns no files.
func pickFile(ctx context.Context) (*domain.FileRecord, error) {
	files, err := fileService.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Println(ui.FormatWarning("No files found"))
		return nil, nil
	}

	idx, err := fuzzyfinder.Find(
		files,
		func(i int) string {
			return files[i].OriginalName
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			f := files[i]
			return fmt.Sprintf("Name: %s\nType: %s\nSize: %s\nUploaded: %s",
				f.OriginalName,
				f.FileType,
				domain.FormatSize(f.FileSize),
				f.DisplayDate())
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil, nil
	}
	return &files[idx], nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
