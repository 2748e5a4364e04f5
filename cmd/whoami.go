package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pxl/pkg/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := accountService.Me(getContext())
		if err != nil {
			return err
		}
		fmt.Println(ui.RenderKeyValue("Name", user.Name))
		fmt.Println(ui.RenderKeyValue("Email", user.Email))
		return nil
	},
}
