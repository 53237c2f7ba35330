// Package main provides the entry point for the adopt CLI.
//
// adopt installs AI assistant configuration (skills, agents, hooks, rules,
// a security bundle, and language stack presets) from an embedded
// distribution tree into a target project, without overwriting files the
// user already has.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adoptai/cli/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flag values, bound in init.
var (
	flagDebug     bool
	flagQuiet     bool
	flagYes       bool
	flagTarget    string
	flagConfigDir string
	flagSource    string
)

// rootCmd represents the base command. Invoked without a subcommand on a
// terminal it opens the interactive component menu.
var rootCmd = &cobra.Command{
	Use:          "adopt",
	Short:        "Install AI assistant configuration into your project",
	Long:         ui.GetHelpText(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}
		ui.SetQuietMode(flagQuiet)
	},
	RunE: runMenu,
}

// Execute runs the root command. Any error has already been reported by
// the failing command; the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Answer yes to confirmation prompts")
	rootCmd.PersistentFlags().StringVar(&flagTarget, "target", ".", "Project directory to install into")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "dir", "", "Configuration root under the target (default .claude)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "Install from an on-disk distribution tree instead of the embedded one")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(hooksCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(precommitCmd)
	rootCmd.AddCommand(securityCmd)
	rootCmd.AddCommand(stackCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(listCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintBanner(version)
		ui.PrintInfo("Version: %s", version)
		ui.PrintInfo("Commit: %s", commit)
		ui.PrintInfo("Built: %s", date)
	},
}

func main() {
	Execute()
}
