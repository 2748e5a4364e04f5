package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pxl/pkg/ui"
)

const minPasswordLength = 8

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your account password",
	Long: `Change the account password. The new password is checked locally
before anything is sent: it must be at least 8 characters and both
entries must match.`,
	RunE: runPasswd,
}

func runPasswd(cmd *cobra.Command, args []string) error {
	current, err := promptPassword("Current password: ")
	if err != nil {
		return err
	}

	updated, err := promptPassword("New password: ")
	if err != nil {
		return err
	}
	if len(updated) < minPasswordLength {
		return fmt.Errorf("new password must be at least %d characters", minPasswordLength)
	}

	confirm, err := promptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if updated != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := accountService.ChangePassword(getContext(), current, updated); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Password changed"))
	return nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(ui.StyleInfo.Render(label))
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
