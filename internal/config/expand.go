package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde resolves a leading "~" against the home directory. It is
// applied to --config, --log-file and the target of config init, so
// "~/.config/sysview/config.yaml" works from the shell or a YAML value
// alike. "~user" forms and paths without a tilde are returned as given, as
// is the input when the home directory is unknown.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
