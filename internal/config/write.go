package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/sysview/internal/errors"
)

// fileHeader is written above the generated YAML.
const fileHeader = `# sysview configuration
# Run 'sysview' for the dashboard or 'sysview snapshot' for a one-shot capture.

`

// fileConfig is the on-disk shape of Config. Durations are written as
// strings ("200ms") so the file round-trips through the loader.
type fileConfig struct {
	Version int          `yaml:"version"`
	Layout  LayoutConfig `yaml:"layout"`
	Probes  fileProbes   `yaml:"probes"`
	Output  OutputConfig `yaml:"output"`
}

type fileProbes struct {
	CPUSample        string   `yaml:"cpu_sample"`
	GraphicsBackends []string `yaml:"graphics_backends"`
	IncludePseudoFS  bool     `yaml:"include_pseudo_fs"`
}

// keyComments annotates generated keys, by section then key.
var keyComments = map[string]map[string]string{
	"layout": {
		"axis":        "vertical | horizontal",
		"resize_step": "ratio change per resize key press",
	},
	"probes": {
		"cpu_sample":        "cpu usage sampling window",
		"graphics_backends": "tried in order until one lists adapters",
	},
	"output": {
		"format": "text | json | yaml (snapshot command)",
		"color":  "auto | always | never",
	},
}

// Marshal renders cfg as commented YAML.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Version: cfg.Version,
		Layout:  cfg.Layout,
		Probes: fileProbes{
			CPUSample:        cfg.Probes.CPUSample.String(),
			GraphicsBackends: cfg.Probes.GraphicsBackends,
			IncludePseudoFS:  cfg.Probes.IncludePseudoFS,
		},
		Output: cfg.Output,
	}

	var root yaml.Node
	if err := root.Encode(fc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	for section, comments := range keyComments {
		node := findMapValue(&root, section)
		if node == nil {
			continue
		}
		for key, comment := range comments {
			if v := findMapValue(node, key); v != nil {
				v.LineComment = comment
			}
		}
	}

	data, err := yaml.Marshal(&root)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}
	return append([]byte(fileHeader), data...), nil
}

// WriteDefault writes the default config to path. An existing file is only
// replaced when force is set.
func WriteDefault(path string, force bool) error {
	path = ExpandTilde(path)

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", path),
			"Use --force to overwrite")
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to create config directory: %s", filepath.Dir(path)),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}
	return nil
}

// findMapValue returns the value node for key in a mapping node, looking
// through a document node if needed.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
