// Package installer copies components from a read-only distribution tree
// into a target project's configuration root.
//
// The installer is stateless between calls: every operation takes its file
// lists from a live enumeration of the source tree and checks the target
// filesystem directly. Existing destination files are never overwritten;
// re-running an install skips everything already present, which makes every
// operation safe to retry after an interruption.
package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/adoptai/cli/assets"
	"github.com/adoptai/cli/internal/catalog"
)

// DefaultConfigDir is the assistant configuration root created under the
// target project.
const DefaultConfigDir = ".claude"

// Sentinel errors for the installer's failure taxonomy. All are
// precondition or filesystem-state conditions; nothing is transient and
// nothing is retried.
var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrUnknownStack     = errors.New("unknown stack preset")
	ErrInvalidItemName  = errors.New("invalid item name")
	ErrItemNotFound     = errors.New("item not found")
	ErrNotGitRepo       = errors.New("not a git repository")
)

// Components is the fixed set of installable component names, in the order
// they appear in the interactive menu.
var Components = []string{"skills", "agents", "hooks", "rules", "precommit", "security", "stack"}

// allSequence is the order the all operation runs components in.
var allSequence = []string{"skills", "agents", "hooks", "rules", "security"}

// Status classifies the result of installing one item.
type Status string

const (
	// StatusInstalled means the item was copied to the destination.
	StatusInstalled Status = "installed"

	// StatusSkipped means the destination already existed and was left
	// untouched.
	StatusSkipped Status = "skipped"

	// StatusFailed means the copy could not be performed.
	StatusFailed Status = "failed"
)

// Outcome is the immutable per-item result of an install operation.
type Outcome struct {
	// Item is the item's name within its component.
	Item string

	// Dest is the destination path the item was (or would have been)
	// written to.
	Dest string

	// Status is the result classification.
	Status Status

	// Note carries extra context for reporting, e.g. that an existing
	// pre-commit hook was preserved under a .backup suffix.
	Note string

	// Err is the failure cause when Status is StatusFailed.
	Err error
}

// Report accumulates the outcomes of one component install.
type Report struct {
	// Component is the component name this report covers.
	Component string

	// Outcomes holds one entry per item, in install order.
	Outcomes []Outcome

	// AdvisorySnippet is set by the security component when a settings
	// file already existed at the destination. It holds the deny-rule
	// JSON the user should merge manually, and must be shown wherever
	// the report is, including inside the all aggregate.
	AdvisorySnippet string
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Installed returns the number of items that were copied.
func (r Report) Installed() int { return r.count(StatusInstalled) }

// Skipped returns the number of items left untouched because the
// destination already existed.
func (r Report) Skipped() int { return r.count(StatusSkipped) }

// Failed returns the number of items that could not be installed.
func (r Report) Failed() int { return r.count(StatusFailed) }

func (r Report) count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Installer copies components from a source tree into a target project.
type Installer struct {
	// Source is the distribution tree, either the embedded assets or an
	// on-disk directory.
	Source fs.FS

	// TargetRoot is the project directory components are installed under.
	TargetRoot string

	// ConfigDir is the configuration root created under TargetRoot.
	ConfigDir string

	// Confirm gates the one overwrite the installer is permitted to
	// perform: replacing an existing settings file during a stack preset
	// install. A nil Confirm declines every overwrite.
	Confirm func(prompt string) bool
}

// New returns an installer reading from src and writing under targetRoot.
func New(src fs.FS, targetRoot string) *Installer {
	return &Installer{
		Source:     src,
		TargetRoot: targetRoot,
		ConfigDir:  DefaultConfigDir,
	}
}

// InstallComponent installs one component by name. The name must be one of
// the fixed component enumeration; "stack" is not accepted here because a
// preset id is required, use InstallStack instead.
func (in *Installer) InstallComponent(name string) (Report, error) {
	switch name {
	case "skills":
		return in.InstallSkills(), nil
	case "agents":
		return in.InstallAgents(), nil
	case "hooks":
		return in.InstallHooks(), nil
	case "rules":
		return in.InstallRules(), nil
	case "precommit":
		return in.InstallPreCommit()
	case "security":
		return in.InstallSecurity()
	case "stack":
		return Report{}, fmt.Errorf("%w: stack requires a preset id (one of %s)",
			ErrUnknownStack, strings.Join(catalog.StackIDs, ", "))
	default:
		return Report{}, fmt.Errorf("%w: %q (expected one of %s)",
			ErrUnknownComponent, name, strings.Join(Components, ", "))
	}
}

// InstallAll runs skills, agents, hooks, rules, and security in sequence.
// One component's failure does not stop the run; every component gets its
// own report.
func (in *Installer) InstallAll() []Report {
	reports := make([]Report, 0, len(allSequence))
	for _, name := range allSequence {
		rep, err := in.InstallComponent(name)
		if err != nil {
			rep.Component = name
			rep.add(Outcome{Item: name, Status: StatusFailed, Err: err})
		}
		reports = append(reports, rep)
	}
	return reports
}

// InstallSkills installs every skill directory from the source tree.
func (in *Installer) InstallSkills() Report {
	rep := Report{Component: "skills"}
	entries, err := catalog.Skills(in.Source)
	if err != nil {
		rep.add(Outcome{Item: "skills", Status: StatusFailed, Err: err})
		return rep
	}
	for _, e := range entries {
		rep.add(in.installSkillDir(e))
	}
	return rep
}

// InstallAgents installs every agent definition file from the source tree.
func (in *Installer) InstallAgents() Report {
	rep := Report{Component: "agents"}
	entries, err := catalog.Agents(in.Source)
	if err != nil {
		rep.add(Outcome{Item: "agents", Status: StatusFailed, Err: err})
		return rep
	}
	for _, e := range entries {
		dest := in.configPath(assets.AgentsDir, path.Base(e.Path))
		rep.add(in.installFile(e.Name, e.Path, dest, 0o644))
	}
	return rep
}

// InstallHooks installs every hook script except the pre-commit review
// hook, which goes into the git hooks directory via InstallPreCommit.
// Hook scripts get the executable bit.
func (in *Installer) InstallHooks() Report {
	rep := Report{Component: "hooks"}
	entries, err := catalog.Hooks(in.Source)
	if err != nil {
		rep.add(Outcome{Item: "hooks", Status: StatusFailed, Err: err})
		return rep
	}
	for _, e := range entries {
		dest := in.configPath(assets.HooksDir, path.Base(e.Path))
		rep.add(in.installFile(e.Name, e.Path, dest, 0o755))
	}
	return rep
}

// InstallRules installs every rule document from the source tree.
func (in *Installer) InstallRules() Report {
	rep := Report{Component: "rules"}
	entries, err := catalog.Rules(in.Source)
	if err != nil {
		rep.add(Outcome{Item: "rules", Status: StatusFailed, Err: err})
		return rep
	}
	for _, e := range entries {
		dest := in.configPath(assets.RulesDir, path.Base(e.Path))
		rep.add(in.installFile(e.Name, e.Path, dest, 0o644))
	}
	return rep
}

// InstallSkill installs one named skill. The name is validated against
// path traversal before any filesystem access.
func (in *Installer) InstallSkill(name string) (Outcome, error) {
	if err := ValidateItemName(name); err != nil {
		return Outcome{}, err
	}
	entry, ok := catalog.Skill(in.Source, name)
	if !ok {
		skills, _ := catalog.Skills(in.Source)
		return Outcome{}, fmt.Errorf("%w: no skill named %q (available: %s)",
			ErrItemNotFound, name, strings.Join(catalog.Names(skills), ", "))
	}
	return in.installSkillDir(entry), nil
}

// InstallAgent installs one named agent. The name is validated against
// path traversal before any filesystem access.
func (in *Installer) InstallAgent(name string) (Outcome, error) {
	if err := ValidateItemName(name); err != nil {
		return Outcome{}, err
	}
	entry, ok := catalog.Agent(in.Source, name)
	if !ok {
		agents, _ := catalog.Agents(in.Source)
		return Outcome{}, fmt.Errorf("%w: no agent named %q (available: %s)",
			ErrItemNotFound, name, strings.Join(catalog.Names(agents), ", "))
	}
	dest := in.configPath(assets.AgentsDir, path.Base(entry.Path))
	return in.installFile(entry.Name, entry.Path, dest, 0o644), nil
}

// configPath joins path elements under the target configuration root.
func (in *Installer) configPath(elem ...string) string {
	parts := append([]string{in.TargetRoot, in.ConfigDir}, elem...)
	return filepath.Join(parts...)
}

// installFile copies one file from the source tree to dest with the given
// mode. The destination directory is created first; an existing
// destination file is left untouched and reported as skipped.
func (in *Installer) installFile(item, srcPath, dest string, mode os.FileMode) Outcome {
	if _, err := os.Lstat(dest); err == nil {
		log.Debug("destination exists, skipping", "item", item, "dest", dest)
		return Outcome{Item: item, Dest: dest, Status: StatusSkipped}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Outcome{Item: item, Dest: dest, Status: StatusFailed,
			Err: fmt.Errorf("failed to create directory: %w", err)}
	}

	data, err := fs.ReadFile(in.Source, srcPath)
	if err != nil {
		return Outcome{Item: item, Dest: dest, Status: StatusFailed,
			Err: fmt.Errorf("failed to read %s: %w", srcPath, err)}
	}

	if err := os.WriteFile(dest, data, mode); err != nil {
		return Outcome{Item: item, Dest: dest, Status: StatusFailed,
			Err: fmt.Errorf("failed to write %s: %w", dest, err)}
	}

	log.Debug("installed file", "item", item, "dest", dest)
	return Outcome{Item: item, Dest: dest, Status: StatusInstalled}
}

// installSkillDir copies one skill directory and everything inside it.
// The skill directory itself is the unit of existence: if it is already
// present at the destination, nothing inside it is touched.
func (in *Installer) installSkillDir(entry catalog.Entry) Outcome {
	destDir := in.configPath(assets.SkillsDir, entry.Name)
	if _, err := os.Lstat(destDir); err == nil {
		log.Debug("skill already installed", "skill", entry.Name, "dest", destDir)
		return Outcome{Item: entry.Name, Dest: destDir, Status: StatusSkipped}
	}

	err := fs.WalkDir(in.Source, entry.Path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, entry.Path)
		rel = strings.TrimPrefix(rel, "/")
		dest := filepath.Join(destDir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		data, err := fs.ReadFile(in.Source, p)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0o644)
	})
	if err != nil {
		return Outcome{Item: entry.Name, Dest: destDir, Status: StatusFailed,
			Err: fmt.Errorf("failed to copy skill %s: %w", entry.Name, err)}
	}

	log.Debug("installed skill", "skill", entry.Name, "dest", destDir)
	return Outcome{Item: entry.Name, Dest: destDir, Status: StatusInstalled}
}
