// Package catalog enumerates the installable components of a distribution
// tree.
//
// The catalog is never persisted or cached: every call re-lists the source
// filesystem, so the result is always a live reflection of the tree's
// current layout. The source is an fs.FS so that the embedded distribution
// and an on-disk override directory behave identically.
package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/adoptai/cli/assets"
)

// Entry describes one installable item inside a component.
type Entry struct {
	// Name is the item identifier: the skill directory name, or the agent,
	// hook, or rule file name without its extension.
	Name string

	// Description is taken from the item's YAML frontmatter when present.
	Description string

	// Path is the item's location inside the source tree, e.g.
	// "skills/code-review" or "agents/planner.md".
	Path string
}

// frontmatter is the YAML header shared by skill and agent files.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// StackIDs is the fixed set of stack preset identifiers, in menu order.
var StackIDs = []string{"typescript", "python", "go", "rust", "ruby", "elixir"}

// IsStackID reports whether id names one of the supported stack presets.
func IsStackID(id string) bool {
	for _, s := range StackIDs {
		if s == id {
			return true
		}
	}
	return false
}

// Skills lists the skill directories in the source tree. Each skill is a
// directory containing a SKILL.md entry point; directories without one are
// ignored.
func Skills(src fs.FS) ([]Entry, error) {
	dirents, err := fs.ReadDir(src, assets.SkillsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	var entries []Entry
	for _, de := range dirents {
		if !de.IsDir() {
			continue
		}
		skillPath := path.Join(assets.SkillsDir, de.Name())
		data, err := fs.ReadFile(src, path.Join(skillPath, assets.SkillFileName))
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:        de.Name(),
			Description: parseDescription(data),
			Path:        skillPath,
		})
	}

	sortEntries(entries)
	return entries, nil
}

// Agents lists the agent definition files in the source tree.
func Agents(src fs.FS) ([]Entry, error) {
	return listFiles(src, assets.AgentsDir, ".md", true)
}

// Rules lists the rule documents in the source tree.
func Rules(src fs.FS) ([]Entry, error) {
	return listFiles(src, assets.RulesDir, ".md", false)
}

// Hooks lists the hook scripts in the source tree, excluding the pre-commit
// review hook, which is installed separately into the git hooks directory.
func Hooks(src fs.FS) ([]Entry, error) {
	entries, err := listFiles(src, assets.HooksDir, ".sh", false)
	if err != nil {
		return nil, err
	}
	out := entries[:0]
	for _, e := range entries {
		if path.Base(e.Path) == assets.PreCommitHookName {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Skill returns one skill by name.
func Skill(src fs.FS, name string) (Entry, bool) {
	return find(Skills, src, name)
}

// Agent returns one agent by name.
func Agent(src fs.FS, name string) (Entry, bool) {
	return find(Agents, src, name)
}

// Names extracts the item names from a list of entries, in order.
func Names(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// listFiles enumerates the regular files with the given extension directly
// under dir. When withMeta is set, each file's YAML frontmatter is parsed
// for a description.
func listFiles(src fs.FS, dir, ext string, withMeta bool) ([]Entry, error) {
	dirents, err := fs.ReadDir(src, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ext) {
			continue
		}
		entry := Entry{
			Name: strings.TrimSuffix(de.Name(), ext),
			Path: path.Join(dir, de.Name()),
		}
		if withMeta {
			if data, err := fs.ReadFile(src, entry.Path); err == nil {
				entry.Description = parseDescription(data)
			}
		}
		entries = append(entries, entry)
	}

	sortEntries(entries)
	return entries, nil
}

func find(list func(fs.FS) ([]Entry, error), src fs.FS, name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	entries, err := list(src)
	if err != nil {
		return Entry{}, false
	}
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// parseDescription extracts the description field from a Markdown file's
// YAML frontmatter. Files without frontmatter yield an empty description;
// malformed frontmatter is treated the same way rather than failing the
// listing.
func parseDescription(data []byte) string {
	body := string(data)
	if !strings.HasPrefix(body, "---\n") {
		return ""
	}
	rest := body[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return ""
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return ""
	}
	return strings.TrimSpace(fm.Description)
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}
