package normalize

import "testing"

func TestExtractDOI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", "10.1038/nature12373", "10.1038/nature12373"},
		{"resolver url", "https://doi.org/10.1103/PhysRev.47.777", "10.1103/PhysRev.47.777"},
		{"publisher url", "https://link.aps.org/doi/10.1103/PhysRev.47.777", "10.1103/PhysRev.47.777"},
		{"embedded in text", "see 10.5555/12345678 for details", "10.5555/12345678"},
		{"no doi", "https://example.com/article", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDOI(tt.in); got != tt.want {
				t.Errorf("ExtractDOI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolverURL(t *testing.T) {
	got := ResolverURL("10.1038/nature12373")
	want := "https://doi.org/10.1038/nature12373"
	if got != want {
		t.Errorf("ResolverURL = %q, want %q", got, want)
	}
}

func TestCleanDOI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", "10.1038/nature12373", "10.1038/nature12373"},
		{"https resolver", "https://doi.org/10.1038/nature12373", "10.1038/nature12373"},
		{"http resolver", "http://doi.org/10.1038/nature12373", "10.1038/nature12373"},
		{"schemeless resolver", "doi.org/10.1038/nature12373", "10.1038/nature12373"},
		{"doi prefix", "doi:10.1038/nature12373", "10.1038/nature12373"},
		{"upper doi prefix", "DOI:10.1038/nature12373", "10.1038/nature12373"},
		{"surrounding space", "  10.1038/nature12373  ", "10.1038/nature12373"},
		{"case preserved", "10.1103/PhysRev.47.777", "10.1103/PhysRev.47.777"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanDOI(tt.in); got != tt.want {
				t.Errorf("CleanDOI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
