package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pxl/pkg/ui"
)

var (
	profileName  string
	profileEmail string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Long: `Show your profile, or update it with the --name / --email flags.

Examples:
  pxl profile
  pxl profile --name "New Name"
  pxl profile --email new@example.com`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVarP(&profileName, "name", "n", "", "New display name")
	profileCmd.Flags().StringVarP(&profileEmail, "email", "e", "", "New email address")
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	user, err := accountService.Me(ctx)
	if err != nil {
		return err
	}

	if profileName == "" && profileEmail == "" {
		fmt.Println(ui.RenderKeyValue("Name", user.Name))
		fmt.Println(ui.RenderKeyValue("Email", user.Email))
		return nil
	}

	name := user.Name
	if profileName != "" {
		name = profileName
	}
	email := user.Email
	if profileEmail != "" {
		email = profileEmail
	}

	if err := accountService.UpdateProfile(ctx, name, email); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Profile updated"))
	return nil
}
