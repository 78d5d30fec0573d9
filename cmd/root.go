package cmd

import (
	"os"

	"github.com/cchamberlain/npm-windows-upgrade/internal/version"
	"github.com/cchamberlain/npm-windows-upgrade/tui"
	helpmenus "github.com/cchamberlain/npm-windows-upgrade/tui/help-menus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command; the tool has no subcommands
var rootCmd = &cobra.Command{
	Use:     "npm-windows-upgrade",
	Short:   "Upgrade npm on Windows",
	Long:    "npm-windows-upgrade upgrades the globally installed npm on Windows,\nwhere npm cannot safely upgrade itself in place.",
	Version: version.BuildVersion,
	// The historical --version:<value> form is not pflag syntax, so the raw
	// arguments are scanned by hand (parseArgs).
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := parseArgs(args)
		if opts.ShowHelp {
			helpmenus.RenderRootHelp(cmd)
			return nil
		}
		return runUpgrade(cmd.Context(), opts)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		CaptureCommandError(rootCmd, err)
		PrintError(err)
		os.Exit(1)
	}
}

func init() {
	tui.InitCommonStyles(os.Stdout)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpmenus.RenderRootHelp(cmd)
	})

	WrapCommandWithSentry(rootCmd)
}
