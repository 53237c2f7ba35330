package installer

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/adoptai/cli/assets"
)

// gitHookName is the file name git runs before each commit.
const gitHookName = "pre-commit"

// InstallPreCommit installs the pre-commit review hook into the target's
// git hooks directory. The target must be version controlled; a .git entry
// is accepted as either a directory or a worktree pointer file.
//
// An existing pre-commit hook is preserved under a .backup suffix before
// the new hook is written. This is not an overwrite of user content: the
// original file stays on disk next to the installed one.
func (in *Installer) InstallPreCommit() (Report, error) {
	rep := Report{Component: "precommit"}

	gitDir := filepath.Join(in.TargetRoot, ".git")
	if _, err := os.Lstat(gitDir); err != nil {
		return rep, fmt.Errorf("%w: %s has no .git entry", ErrNotGitRepo, in.TargetRoot)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return rep, fmt.Errorf("failed to create %s: %w", hooksDir, err)
	}

	dest := filepath.Join(hooksDir, gitHookName)
	note := ""
	if _, err := os.Lstat(dest); err == nil {
		backup := dest + ".backup"
		if err := os.Rename(dest, backup); err != nil {
			rep.add(Outcome{Item: gitHookName, Dest: dest, Status: StatusFailed,
				Err: fmt.Errorf("failed to back up existing hook: %w", err)})
			return rep, nil
		}
		log.Debug("backed up existing pre-commit hook", "backup", backup)
		note = fmt.Sprintf("existing hook preserved as %s", backup)
	}

	src := path.Join(assets.HooksDir, assets.PreCommitHookName)
	data, err := fs.ReadFile(in.Source, src)
	if err != nil {
		rep.add(Outcome{Item: gitHookName, Dest: dest, Status: StatusFailed,
			Err: fmt.Errorf("failed to read %s: %w", src, err)})
		return rep, nil
	}
	if err := os.WriteFile(dest, data, 0o755); err != nil {
		rep.add(Outcome{Item: gitHookName, Dest: dest, Status: StatusFailed,
			Err: fmt.Errorf("failed to write %s: %w", dest, err)})
		return rep, nil
	}

	log.Debug("installed pre-commit hook", "dest", dest)
	rep.add(Outcome{Item: gitHookName, Dest: dest, Status: StatusInstalled, Note: note})
	return rep, nil
}
