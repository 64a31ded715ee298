// Package cmd holds the readconfig cobra commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/listenupapp/readconfig/internal/config"
	"github.com/listenupapp/readconfig/internal/di"
	"github.com/listenupapp/readconfig/internal/logger"
	"github.com/listenupapp/readconfig/internal/service"
)

var (
	flags    config.Flags
	injector *do.RootScope
	log      *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "readconfig",
	Short: "Manage reader display preferences",
	Long: `readconfig keeps the reader's display preferences: color theme per
light/dark mode, font size, spacing, page-turn mode and auto-read settings.

Every change is persisted immediately. Auto-read is session-only and always
starts off.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		injector = di.NewContainer(flags)
		if err := di.Bootstrap(injector); err != nil {
			return err
		}
		log = do.MustInvoke[*logger.Logger](injector)
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		shutdown()
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.Env, "env", "", "Environment (development, staging, production)")
	pf.StringVar(&flags.EnvFile, "env-file", ".env", "Path to .env file")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.LogFormat, "log-format", "", "Log format (json, pretty, logfmt)")
	pf.StringVar(&flags.Backend, "backend", "", "Storage backend (badger, sqlite, memory)")
	pf.StringVar(&flags.DataPath, "data-path", "", "Directory for the preference database")
	pf.StringVar(&flags.ThemeSource, "theme-source", "", "Theme source (switch, file, portal)")
	pf.StringVar(&flags.ThemeMode, "theme", "", "Initial theme for the switch source (light, dark)")
	pf.StringVar(&flags.ThemeFile, "theme-file", "", "Signal file for the file theme source")
	pf.StringVar(&flags.PalettePath, "palette", "", "YAML palette file")

	rootCmd.AddCommand(showCmd, setCmd, colorCmd, pageTypeCmd, autoReadModeCmd, serveCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		shutdown()
	}
	return err
}

func shutdown() {
	if injector == nil {
		return
	}
	_ = injector.Shutdown()
	injector = nil
}

func preferencesService() *service.PreferencesService {
	return do.MustInvoke[*service.PreferencesService](injector)
}
