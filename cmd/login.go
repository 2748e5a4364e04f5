package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pxl/pkg/ui"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a session token",
	Long: `Sign in to the image host with your email and password.

The bearer token is stored locally with owner-only permissions; every
other command picks it up automatically.

Examples:
  pxl login
  pxl login --email me@example.com`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (prompted if omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	email := strings.TrimSpace(loginEmail)
	if email == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print(ui.StyleInfo.Render("Email: "))
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(input)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Print(ui.StyleInfo.Render("Password: "))
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := string(passwordBytes)
	if password == "" {
		return fmt.Errorf("password is required")
	}

	token, err := accountService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := appSession.Save(token); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Logged in as " + email))
	return nil
}
