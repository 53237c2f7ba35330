// Package ui provides the ASCII banner and help text for the adopt CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo for the adopt CLI.
const banner = `
   █████╗ ██████╗  ██████╗ ██████╗ ████████╗
  ██╔══██╗██╔══██╗██╔═══██╗██╔══██╗╚══██╔══╝
  ███████║██║  ██║██║   ██║██████╔╝   ██║   
  ██╔══██║██║  ██║██║   ██║██╔═══╝    ██║   
  ██║  ██║██████╔╝╚██████╔╝██║        ██║   
  ╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝        ╚═╝   `

// tagline is the product tagline.
const tagline = "Assistant configuration for your project, one command away"

// PrintBanner prints the adopt banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))
	fmt.Println()

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)
	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println()
}

// GetHelpText returns the long help shown by adopt --help.
func GetHelpText() string {
	return `adopt installs AI assistant configuration into your project:
skills, agents, hooks, rule documents, a security bundle, and
per-language stack presets.

Existing files are never overwritten. Re-running any install is safe:
files already present are skipped.

Run adopt with no arguments in a terminal for an interactive menu.

COMPONENTS:
  skills      Reusable task playbooks installed under .claude/skills/
  agents      Subagent definitions installed under .claude/agents/
  hooks       Automation scripts installed under .claude/hooks/
  rules       Always-on rule documents installed under .claude/rules/
  precommit   Assistant-backed review hook for .git/hooks/pre-commit
  security    Bash validation hook, deny rules, and security settings
  stack       Language presets: typescript, python, go, rust, ruby, elixir

EXAMPLES:
  adopt                 # Interactive menu
  adopt all             # Install everything except precommit and stack
  adopt skills          # Install all skills
  adopt skill code-review
  adopt stack go
  adopt list            # Show what is available`
}
