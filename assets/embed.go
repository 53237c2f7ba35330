// Package assets holds the embedded distribution tree for the adopt CLI.
//
// Every installable component (skills, agents, hooks, rules, the security
// bundle, and stack presets) is embedded at compile time via go:embed so
// that every distribution channel (Homebrew, direct download, go install)
// can install components without requiring network access or extra files.
// The files under this directory are the canonical copies.
package assets

import (
	"embed"
)

// FS is the embedded distribution tree. Paths are relative to this
// directory, e.g. "skills/code-review/SKILL.md".
//
//go:embed all:skills all:agents all:hooks all:rules all:security all:stacks
var FS embed.FS

// Well-known directory names inside the distribution tree. The installed
// layout under the target config root mirrors these names.
const (
	SkillsDir   = "skills"
	AgentsDir   = "agents"
	HooksDir    = "hooks"
	RulesDir    = "rules"
	SecurityDir = "security"
	StacksDir   = "stacks"
)

// Well-known file names.
const (
	// SkillFileName is the entry point file inside each skill directory.
	SkillFileName = "SKILL.md"

	// SettingsFileName is the assistant settings file, both in the
	// security bundle and in each stack preset.
	SettingsFileName = "settings.json"

	// StackRulesFileName is the rule document inside each stack preset.
	StackRulesFileName = "rules.md"

	// PreCommitHookName is the pre-commit review hook. It lives under
	// hooks/ but is excluded from the hooks component and installed
	// separately into the git hooks directory.
	PreCommitHookName = "pre-commit-review.sh"

	// ValidateHookName is the bash command validation hook installed by
	// the security bundle.
	ValidateHookName = "validate-bash.sh"
)
