package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads metadata from a package.json or a YAML manifest.
func Load(path string) (*Metadata, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("manifest path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	meta, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	meta.Source = path
	return meta, nil
}

// Parse decodes manifest data. ext selects the format: ".yaml" and ".yml" are
// YAML, anything else is JSON.
func Parse(data []byte, ext string) (*Metadata, error) {
	var meta Metadata
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &meta); err != nil {
			return nil, err
		}
	}

	meta.Normalize()
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return &meta, nil
}
