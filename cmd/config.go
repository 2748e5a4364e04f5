package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the pxl configuration",
	Long: `Inspect or change the persistent configuration.

Settings cover the API endpoint, upload behavior (anonymous uploads,
Discord embeds, auto-delete, generated link length) and the watch
command.

Examples:
  pxl config list
  pxl config get url_length
  pxl config set url_length 12
  pxl config set anonymous_upload true
  pxl config edit`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := make([]string, 0, len(configKeys))
		for k := range configKeys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Println(ui.RenderKeyValue(k, configKeys[k].get()))
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, ok := configKeys[args[0]]
		if !ok {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		fmt.Println(entry.get())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, ok := configKeys[args[0]]
		if !ok {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		if err := entry.set(args[1]); err != nil {
			return err
		}
		if err := appConfig.Save(appConfigPath); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess(args[0] + " = " + entry.get()))
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Write out defaults first so there is something to edit.
		if _, err := os.Stat(appConfigPath); os.IsNotExist(err) {
			if err := appConfig.Save(appConfigPath); err != nil {
				return err
			}
		}

		fmt.Println(ui.FormatInfo("Opening config: " + appConfigPath))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, appConfigPath)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEditCmd)
}

type configEntry struct {
	get func() string
	set func(string) error
}

var configKeys = map[string]configEntry{
	"api_url": {
		get: func() string { return appConfig.APIURL },
		set: func(v string) error {
			appConfig.APIURL = v
			return nil
		},
	},
	"anonymous_upload": {
		get: func() string { return strconv.FormatBool(appConfig.AnonymousUpload) },
		set: func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			appConfig.AnonymousUpload = b
			return nil
		},
	},
	"discord_embed": {
		get: func() string { return strconv.FormatBool(appConfig.DiscordEmbed) },
		set: func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			appConfig.DiscordEmbed = b
			return nil
		},
	},
	"auto_delete_days": {
		get: func() string { return strconv.Itoa(appConfig.AutoDeleteDays) },
		set: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("expected a non-negative number of days, got %q", v)
			}
			appConfig.AutoDeleteDays = n
			return nil
		},
	},
	"url_length": {
		get: func() string { return strconv.Itoa(appConfig.URLLength) },
		set: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("expected a number, got %q", v)
			}
			if n < domain.MinURLLength || n > domain.MaxURLLength {
				return fmt.Errorf("url_length must be between %d and %d",
					domain.MinURLLength, domain.MaxURLLength)
			}
			appConfig.URLLength = n
			return nil
		},
	},
	"watch_dir": {
		get: func() string { return appConfig.WatchDir },
		set: func(v string) error {
			appConfig.WatchDir = v
			return nil
		},
	},
	"watch_debounce_ms": {
		get: func() string { return strconv.Itoa(appConfig.WatchDebounceMS) },
		set: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("expected a positive number of milliseconds, got %q", v)
			}
			appConfig.WatchDebounceMS = n
			return nil
		},
	},
	"color_theme": {
		get: func() string { return appConfig.ColorTheme },
		set: func(v string) error {
			if v != "auto" && v != "dark" && v != "light" {
				return fmt.Errorf("color_theme must be auto, dark or light")
			}
			appConfig.ColorTheme = v
			return nil
		},
	},
}
