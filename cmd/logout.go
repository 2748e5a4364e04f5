package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pxl/pkg/ui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appSession.LoggedIn() {
			fmt.Println(ui.FormatInfo("Already logged out"))
			return nil
		}
		if err := appSession.Clear(); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Logged out"))
		return nil
	},
}
