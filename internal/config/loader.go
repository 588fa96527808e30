package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Profile holds the expectations the inspector checks an index against.
// Empty fields mean "unspecified" and fall back to the defaults in Default.
type Profile struct {
	Required      []string `json:"required" yaml:"required" toml:"required"`
	KnownPrefixes []string `json:"known_prefixes" yaml:"known_prefixes" toml:"known_prefixes"`
}

// Default returns the built-in expectation profile for the multi-modal LM
// layout (text embedding/head, audio heads, transformer layers).
func Default() Profile {
	return Profile{
		Required: []string{"text_emb.weight", "text_out_head.weight"},
		KnownPrefixes: []string{
			"text_emb", "text_out_head", "audio_emb", "audio_out_heads",
			"transformer", "layers", "model.layers", "model.norm", "output_norm", "norm",
		},
	}
}

// Load reads a profile file based on its extension and fills unspecified
// fields from Default. Supports: .yaml/.yml, .json, .toml
func Load(path string) (Profile, error) {
	var p Profile
	if path == "" {
		return p, fmt.Errorf("empty profile path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &p); err != nil { return p, err }
	case ".json":
		if err := json.Unmarshal(b, &p); err != nil { return p, err }
	case ".toml":
		if err := toml.Unmarshal(b, &p); err != nil { return p, err }
	default:
		return p, fmt.Errorf("unsupported profile extension: %s", ext)
	}
	def := Default()
	if len(p.Required) == 0 {
		p.Required = def.Required
	}
	if len(p.KnownPrefixes) == 0 {
		p.KnownPrefixes = def.KnownPrefixes
	}
	return p, nil
}
