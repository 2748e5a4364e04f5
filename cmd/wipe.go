package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/pkg/ui"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete ALL of your uploaded files",
	Long: `Delete every file on your account in one call.

This cannot be undone, so the confirmation requires typing the word
"wipe" in full rather than a single keystroke.`,
	RunE: runWipe,
}

func runWipe(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	files, err := fileService.List(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(ui.FormatInfo("Nothing to wipe, account is already empty"))
		return nil
	}

	var total int64
	for _, f := range files {
		total += f.FileSize
	}

	fmt.Println(ui.FormatWarning(fmt.Sprintf("You are about to delete %d files (%s)",
		len(files), domain.FormatSize(total))))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	fmt.Print(ui.StyleError.Render("Type 'wipe' to confirm: "))
	response, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(response) != "wipe" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := fileService.Wipe(ctx); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Deleted %d files", len(files))))
	return nil
}
