package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pxl/pkg/ui"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List active login sessions",
	Long: `List the active login sessions on your account, including the
browser or device behind each one.

Use 'pxl sessions terminate <token>' to revoke a session remotely.`,
	RunE: runSessions,
}

var sessionsTerminateCmd = &cobra.Command{
	Use:   "terminate <token>",
	Short: "Revoke a session by its token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := accountService.TerminateSession(getContext(), args[0]); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Session terminated"))
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsTerminateCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	sessions, err := accountService.Sessions(getContext())
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println(ui.FormatWarning("No active sessions"))
		return nil
	}

	current, _ := appSession.Token()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "DEVICE"},
		{Header: "IP"},
		{Header: "LAST ACTIVE"},
		{Header: "TOKEN", MaxWidth: 18},
		{Header: ""},
	})
	for _, s := range sessions {
		device := s.BrowserInfo()
		if s.IsMobile() {
			device += " (mobile)"
		}
		marker := ""
		if s.SessionToken == current {
			marker = "current"
		}
		table.AddRow([]string{device, s.IPAddress, s.LastActive, s.SessionToken, marker})
	}

	fmt.Print(table.Render())
	return nil
}
