// Package main provides the security bundle install command.
package main

import (
	"github.com/spf13/cobra"
)

// securityCmd installs the security bundle.
var securityCmd = &cobra.Command{
	Use:   "security",
	Short: "Install the bash validation hook, security rules, and settings",
	Long: `Install the security bundle: a hook that validates bash commands
before they run, the security rule document, and a settings file with
deny rules for credential files and destructive commands.

If a settings file already exists it is left untouched and the deny
rules are printed for you to merge by hand. adopt never rewrites an
existing security configuration.

EXAMPLES:
  adopt security
  adopt security --target ../app`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComponent("security")
	},
}
