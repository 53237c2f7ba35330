package installer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/adoptai/cli/assets"
)

// InstallSecurity installs the security bundle: the bash validation hook,
// the security rule document, and the security settings file.
//
// The settings file is only created when none exists. When the target
// already has one, it is left byte-for-byte untouched and the deny rules
// from the bundled settings are carried on the report as an advisory
// snippet for the user to merge by hand. The installer never rewrites an
// existing security configuration itself.
func (in *Installer) InstallSecurity() (Report, error) {
	rep := Report{Component: "security"}

	hookSrc := path.Join(assets.HooksDir, assets.ValidateHookName)
	hookDest := in.configPath(assets.HooksDir, assets.ValidateHookName)
	rep.add(in.installFile("validate-bash", hookSrc, hookDest, 0o755))

	ruleSrc := path.Join(assets.RulesDir, "security.md")
	ruleDest := in.configPath(assets.RulesDir, "security.md")
	rep.add(in.installFile("security-rules", ruleSrc, ruleDest, 0o644))

	bundled, err := fs.ReadFile(in.Source, path.Join(assets.SecurityDir, assets.SettingsFileName))
	if err != nil {
		return rep, fmt.Errorf("failed to read bundled security settings: %w", err)
	}

	dest := in.configPath(assets.SettingsFileName)
	if _, err := os.Lstat(dest); err == nil {
		snippet, err := denySnippet(bundled)
		if err != nil {
			return rep, err
		}
		rep.AdvisorySnippet = snippet
		rep.add(Outcome{
			Item:   "settings",
			Dest:   dest,
			Status: StatusSkipped,
			Note:   "existing settings left untouched; merge the deny rules manually",
		})
		return rep, nil
	}

	settingsSrc := path.Join(assets.SecurityDir, assets.SettingsFileName)
	rep.add(in.installFile("settings", settingsSrc, dest, 0o644))
	return rep, nil
}

// denySnippet extracts the permissions.deny list from the bundled settings
// and renders it as a standalone JSON document suitable for manual merging.
func denySnippet(bundled []byte) (string, error) {
	deny := gjson.GetBytes(bundled, "permissions.deny")
	if !deny.Exists() {
		return "", fmt.Errorf("bundled security settings have no permissions.deny list")
	}

	snippet, err := sjson.SetRaw("{}", "permissions.deny", deny.Raw)
	if err != nil {
		return "", fmt.Errorf("failed to build deny-rule snippet: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(snippet), "", "  "); err != nil {
		return "", fmt.Errorf("failed to format deny-rule snippet: %w", err)
	}
	return out.String(), nil
}
