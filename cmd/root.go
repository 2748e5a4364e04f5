package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pxl/internal/adapters/api"
	"pxl/internal/core/ports"
	"pxl/internal/core/services"
	"pxl/pkg/config"
	"pxl/pkg/logging"
	"pxl/pkg/session"
	"pxl/pkg/ui"
)

var (
	verbose bool

	// Globals wired by initializeApp
	appConfig      *config.Config
	appConfigPath  string
	appSession     *session.Store
	logger         *zap.Logger
	apiClient      *api.Client
	fileService    ports.FileService
	accountService ports.AccountService
	registry       *services.Registry
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pxl",
	Short: "PXL - Image host client",
	Long: ui.StyleTitle.Render("PXL") + " - Image Host Client\n\n" +
		"Upload, browse and manage your hosted images from the terminal.\n" +
		"Charts and usage summaries included, no browser required.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if appSession != nil {
				appSession.Clear()
			}
			fmt.Println(ui.FormatError("Session expired or invalid"))
			fmt.Println(ui.FormatInfo("Run 'pxl login' to sign in again"))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable request tracing output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(watchCmd)
}

// commands that work without a stored token
var anonymousCommands = map[string]bool{
	"version":    true,
	"login":      true,
	"logout":     true,
	"config":     true,
	"view":       true,
	"help":       true,
	"completion": true,
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to locate config: %w", err)
	}
	appConfigPath = path

	appConfig, err = config.Load(path)
	if err != nil {
		return err
	}
	ui.SetTheme(appConfig.ColorTheme)

	logger, err = logging.New(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appSession, err = session.New()
	if err != nil {
		return err
	}

	token, tokenErr := appSession.Token()
	if tokenErr != nil && !anonymousCommands[cmd.Name()] && !anonymousCommands[parentName(cmd)] {
		fmt.Println(ui.FormatError("Not logged in"))
		fmt.Println(ui.FormatInfo("Run 'pxl login' to sign in"))
		os.Exit(1)
	}

	apiClient = api.New(appConfig.APIURL, token, logger)
	fileService = apiClient
	accountService = apiClient
	registry = services.NewRegistry(fileService, true)

	return nil
}

func parentName(cmd *cobra.Command) string {
	if p := cmd.Parent(); p != nil {
		return p.Name()
	}
	return ""
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
