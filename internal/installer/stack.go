package installer

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/adoptai/cli/assets"
	"github.com/adoptai/cli/internal/catalog"
)

// InstallStack installs one stack preset: the stack's rule document under a
// stack-qualified name, and the stack's settings file.
//
// The rule file follows the normal never-overwrite policy. The settings
// file is the one place the installer may overwrite an existing file, and
// only after the Confirm callback approves it; with no callback or a
// declined prompt the existing settings are kept.
func (in *Installer) InstallStack(id string) (Report, error) {
	rep := Report{Component: "stack"}

	if !catalog.IsStackID(id) {
		return rep, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownStack, id, strings.Join(catalog.StackIDs, ", "))
	}

	ruleSrc := path.Join(assets.StacksDir, id, assets.StackRulesFileName)
	ruleDest := in.configPath(assets.RulesDir, id+"-stack.md")
	rep.add(in.installFile(id+"-stack-rules", ruleSrc, ruleDest, 0o644))

	settingsSrc := path.Join(assets.StacksDir, id, assets.SettingsFileName)
	settingsDest := in.configPath(assets.SettingsFileName)

	if _, err := os.Lstat(settingsDest); err != nil {
		rep.add(in.installFile(id+"-settings", settingsSrc, settingsDest, 0o644))
		return rep, nil
	}

	prompt := fmt.Sprintf("A settings file already exists at %s. Replace it with the %s preset?", settingsDest, id)
	if in.Confirm == nil || !in.Confirm(prompt) {
		rep.add(Outcome{
			Item:   id + "-settings",
			Dest:   settingsDest,
			Status: StatusSkipped,
			Note:   "kept existing settings",
		})
		return rep, nil
	}

	data, err := fs.ReadFile(in.Source, settingsSrc)
	if err != nil {
		rep.add(Outcome{Item: id + "-settings", Dest: settingsDest, Status: StatusFailed,
			Err: fmt.Errorf("failed to read %s: %w", settingsSrc, err)})
		return rep, nil
	}
	if err := os.WriteFile(settingsDest, data, 0o644); err != nil {
		rep.add(Outcome{Item: id + "-settings", Dest: settingsDest, Status: StatusFailed,
			Err: fmt.Errorf("failed to write %s: %w", settingsDest, err)})
		return rep, nil
	}

	log.Debug("replaced settings with stack preset", "stack", id, "dest", settingsDest)
	rep.add(Outcome{
		Item:   id + "-settings",
		Dest:   settingsDest,
		Status: StatusInstalled,
		Note:   "replaced existing settings after confirmation",
	})
	return rep, nil
}
