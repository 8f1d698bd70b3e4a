package crossref

import "testing"

func TestToEntry_FieldMapping(t *testing.T) {
	w := &Work{
		DOI:            "10.1038/nature12373",
		Title:          []string{"Nanometre-scale thermometry in a living cell"},
		ContainerTitle: []string{"Nature"},
		Volume:         "500",
		Issue:          "7460",
		Page:           "54-58",
		Author: []Author{
			{Given: "G.", Family: "Kucsko"},
			{Given: "P. C.", Family: "Maurer"},
		},
		Issued: Date{DateParts: [][]int{{2013, 7, 31}}},
	}

	entry := ToEntry(w)

	if entry.Type != "article" {
		t.Errorf("Type = %q, want %q", entry.Type, "article")
	}
	if entry.Key != "Kucsko2013Nanometre" {
		t.Errorf("Key = %q, want %q", entry.Key, "Kucsko2013Nanometre")
	}
	if got := entry.Get("author"); got != "G. Kucsko and P. C. Maurer" {
		t.Errorf("author = %q", got)
	}
	if got := entry.Get("journal"); got != "Nature" {
		t.Errorf("journal = %q", got)
	}
	if got := entry.Get("volume"); got != "500" {
		t.Errorf("volume = %q", got)
	}
	if got := entry.Get("number"); got != "7460" {
		t.Errorf("number = %q", got)
	}
	if got := entry.Get("pages"); got != "54-58" {
		t.Errorf("pages = %q", got)
	}
	if got := entry.Get("year"); got != "2013" {
		t.Errorf("year = %q", got)
	}
	if got := entry.Get("url"); got != "https://doi.org/10.1038/nature12373" {
		t.Errorf("url = %q, want the resolver address", got)
	}
}

func TestToEntry_SparseRecord(t *testing.T) {
	entry := ToEntry(&Work{Title: []string{"Untitled manuscript"}})

	if entry.Key != "unknownUntitled" {
		t.Errorf("Key = %q, want %q", entry.Key, "unknownUntitled")
	}
	if got := entry.Get("year"); got != "" {
		t.Errorf("year = %q, want empty", got)
	}
	if got := entry.Get("doi"); got != "" {
		t.Errorf("doi = %q, want empty", got)
	}
}

func TestToEntry_CorporateAuthor(t *testing.T) {
	w := &Work{
		Author: []Author{{Name: "ATLAS Collaboration"}},
		Title:  []string{"Observation of a new particle"},
		Issued: Date{DateParts: [][]int{{2012}}},
	}

	entry := ToEntry(w)

	if got := entry.Get("author"); got != "{{ATLAS Collaboration}}" {
		t.Errorf("author = %q, want double-braced literal", got)
	}
	if entry.Key != "ATLASCollaboration2012Observation" {
		t.Errorf("Key = %q", entry.Key)
	}
}

func TestToEntry_MultiWordFamilyKey(t *testing.T) {
	w := &Work{
		Author: []Author{{Given: "Jan", Family: "van der Berg"}},
		Title:  []string{"A study"},
		Issued: Date{DateParts: [][]int{{2021}}},
	}

	if got := ToEntry(w).Key; got != "vanderBerg2021A" {
		t.Errorf("Key = %q, want %q", got, "vanderBerg2021A")
	}
}

func TestToEntry_URLFallsBackWithoutDOI(t *testing.T) {
	w := &Work{
		URL:   "https://example.com/preprint",
		Title: []string{"No identifier yet"},
	}

	if got := ToEntry(w).Get("url"); got != "https://example.com/preprint" {
		t.Errorf("url = %q, want the record URL", got)
	}
}
