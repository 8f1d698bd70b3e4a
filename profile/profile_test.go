package profile

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestNewRegistry_EmbeddedProfiles(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	names := registry.List()
	sort.Strings(names)
	want := []string{"compact", "default", "plain"}
	if len(names) != len(want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRegistry_DefaultProfileOptions(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	p, ok := registry.Get("default")
	if !ok {
		t.Fatal("default profile missing")
	}

	opts := p.NormalizeOptions()
	if opts.StripPeriods {
		t.Error("default profile strips periods")
	}
	if !opts.ExtractDOIFromURL {
		t.Error("default profile does not extract DOIs")
	}
	if !opts.EnforceDOIURL {
		t.Error("default profile does not enforce resolver URLs")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if _, ok := registry.Get("no-such-profile"); ok {
		t.Error("Get returned a profile for an unknown name")
	}
}

func TestRegistry_Register(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	registry.Register(&Profile{Name: "custom", Options: Options{StripPeriods: true}})

	p, ok := registry.Get("custom")
	if !ok {
		t.Fatal("registered profile missing")
	}
	if !p.NormalizeOptions().StripPeriods {
		t.Error("registered options lost")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house-style.yaml")
	data := []byte(`description: House citation style
options:
  strip_periods: true
  extract_doi_from_url: true
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p.Name != "house-style" {
		t.Errorf("Name = %q, want the file basename", p.Name)
	}
	opts := p.NormalizeOptions()
	if !opts.StripPeriods || !opts.ExtractDOIFromURL || opts.EnforceDOIURL {
		t.Errorf("options = %+v", opts)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("options: [not, a, mapping]"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML succeeded")
	}
}
