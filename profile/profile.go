// Package profile provides named option presets for the normalization
// passes, loadable from YAML files with embedded defaults.
package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/bibtidy/normalize"
)

//go:embed profiles/*.yaml
var embeddedProfiles embed.FS

// Profile names a reusable option preset.
type Profile struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Options     Options `yaml:"options"`
}

// Options mirrors normalize.Options in YAML form.
type Options struct {
	StripPeriods      bool `yaml:"strip_periods"`
	ExtractDOIFromURL bool `yaml:"extract_doi_from_url"`
	EnforceDOIURL     bool `yaml:"enforce_doi_url"`
}

// NormalizeOptions converts the preset to the option set consumed by the
// normalization passes.
func (p *Profile) NormalizeOptions() normalize.Options {
	return normalize.Options{
		StripPeriods:      p.Options.StripPeriods,
		ExtractDOIFromURL: p.Options.ExtractDOIFromURL,
		EnforceDOIURL:     p.Options.EnforceDOIURL,
	}
}

// Registry holds loaded profiles.
type Registry struct {
	profiles map[string]*Profile
}

// NewRegistry creates a registry with the embedded profiles loaded.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		profiles: make(map[string]*Profile),
	}

	entries, err := embeddedProfiles.ReadDir("profiles")
	if err != nil {
		return r, nil // No embedded profiles, that's okay
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := embeddedProfiles.ReadFile("profiles/" + entry.Name())
		if err != nil {
			continue
		}

		profile, err := parseProfile(data)
		if err != nil {
			continue
		}

		if profile.Name == "" {
			profile.Name = strings.TrimSuffix(entry.Name(), ".yaml")
		}
		r.profiles[profile.Name] = profile
	}

	return r, nil
}

// Load reads a profile from a file path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	profile, err := parseProfile(data)
	if err != nil {
		return nil, err
	}

	if profile.Name == "" {
		profile.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
	}
	return profile, nil
}

func parseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	return &profile, nil
}

// Get retrieves a profile by name.
func (r *Registry) Get(name string) (*Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// Register adds a profile to the registry.
func (r *Registry) Register(profile *Profile) {
	r.profiles[profile.Name] = profile
}

// List returns all registered profile names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}
