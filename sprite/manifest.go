package sprite

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultManifestPath is looked up in the working directory when no explicit path is given
const DefaultManifestPath = "speaki-manifest.yaml"

//go:embed default.yaml
var embeddedManifest []byte

// Manifest is the on-disk description of states and the voice bank
type Manifest struct {
	States []StateEntry `yaml:"states"`
	Voices []VoiceEntry `yaml:"voices"`
}

// StateEntry references edge targets by state name
type StateEntry struct {
	Name  string            `yaml:"name"`
	Image string            `yaml:"image"`
	Face  string            `yaml:"face"`
	Edges map[string]string `yaml:"edges"`
}

// VoiceEntry describes one clip; Pitch and Duration drive synthesis when no file is playable
type VoiceEntry struct {
	Name     string        `yaml:"name"`
	File     string        `yaml:"file"`
	Pitch    float64       `yaml:"pitch"`
	Steps    []float64     `yaml:"steps"`
	Duration time.Duration `yaml:"duration"`
}

// Bank is the loaded graph plus voice table
type Bank struct {
	Graph  *Graph
	Voices []VoiceEntry
}

// ParseManifest decodes YAML and builds the graph
func ParseManifest(data []byte) (*Bank, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m.Build()
}

// Build resolves named edges into a Graph
func (m *Manifest) Build() (*Bank, error) {
	if len(m.States) == 0 {
		return nil, ErrEmptyManifest
	}

	index := make(map[string]int, len(m.States))
	b := NewBuilder()
	for _, s := range m.States {
		if _, dup := index[s.Name]; dup {
			return nil, fmt.Errorf("sprite: duplicate state %q", s.Name)
		}
		index[s.Name] = b.Add(s.Name, s.Image, s.Face)
	}

	for _, s := range m.States {
		from := index[s.Name]
		for key, target := range s.Edges {
			e, ok := ParseEdge(key)
			if !ok {
				return nil, fmt.Errorf("%w: %q on state %q", ErrUnknownEdge, key, s.Name)
			}
			to, ok := index[target]
			if !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownState, target, s.Name)
			}
			b.Link(from, e, to)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Bank{Graph: g, Voices: m.Voices}, nil
}

// LoadManifest reads and builds a manifest file
func LoadManifest(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	bank, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return bank, nil
}

// LoadManifestAuto resolves by priority: custom path, DefaultManifestPath, embedded default
func LoadManifestAuto(customPath string) (*Bank, error) {
	if customPath != "" {
		return LoadManifest(customPath)
	}
	if _, err := os.Stat(DefaultManifestPath); err == nil {
		return LoadManifest(DefaultManifestPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat manifest %s: %w", DefaultManifestPath, err)
	}
	return Default()
}

// Default builds the embedded manifest
func Default() (*Bank, error) {
	return ParseManifest(embeddedManifest)
}
