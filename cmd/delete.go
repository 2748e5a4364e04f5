package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/pkg/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete an uploaded file (alias: rm)",
	Long: `Delete one of your uploaded files.

With no argument an interactive picker opens; otherwise the numeric
file id is deleted directly. Deletion is permanent and the share link
stops working immediately.

Examples:
  pxl delete
  pxl delete 42 --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var target *domain.FileRecord

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid file id %q", args[0])
		}
		files, err := fileService.List(ctx)
		if err != nil {
			return err
		}
		for i := range files {
			if files[i].ID == id {
				target = &files[i]
				break
			}
		}
		if target == nil {
			fmt.Println(ui.FormatWarning(fmt.Sprintf("No file with id %d", id)))
			return nil
		}
	} else {
		picked, err := pickFile(ctx)
		if err != nil {
			return err
		}
		if picked == nil {
			return nil
		}
		target = picked
	}

	if !deleteYes {
		fmt.Println(ui.FormatWarning("You are about to delete:"))
		fmt.Printf("  %s %s\n",
			ui.StyleBold.Render(target.OriginalName),
			ui.StyleMuted.Render("("+domain.FormatSize(target.FileSize)+")"))
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)
		fmt.Print(ui.StyleError.Render("Delete file? (y/n): "))
		response, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(response)) != "y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := fileService.Delete(ctx, target.ID); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("File deleted."))
	return nil
}
