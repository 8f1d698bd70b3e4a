// Package crossref provides a rate-limited client for the Crossref REST
// API and the adapter from its metadata records to bibliography entries.
package crossref

// Work is the subset of a Crossref work record this tool consumes. The
// shape is owned by the Crossref API, not by this package.
type Work struct {
	DOI            string   `json:"DOI"`
	Title          []string `json:"title"`
	ContainerTitle []string `json:"container-title"`
	Volume         string   `json:"volume"`
	Issue          string   `json:"issue"`
	Page           string   `json:"page"`
	URL            string   `json:"URL"`
	Author         []Author `json:"author"`
	Issued         Date     `json:"issued"`
}

// Author is one given/family author pair from a work record.
type Author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	// Name carries a literal name for corporate authors.
	Name string `json:"name"`
}

// Date is a Crossref date-parts value.
type Date struct {
	DateParts [][]int `json:"date-parts"`
}

// Year returns the publication year, or 0 when the record carries none.
func (w *Work) Year() int {
	if len(w.Issued.DateParts) == 0 || len(w.Issued.DateParts[0]) == 0 {
		return 0
	}
	return w.Issued.DateParts[0][0]
}

// PrimaryTitle returns the first title of the work, or "".
func (w *Work) PrimaryTitle() string {
	if len(w.Title) == 0 {
		return ""
	}
	return w.Title[0]
}

// Container returns the first container title (journal name), or "".
func (w *Work) Container() string {
	if len(w.ContainerTitle) == 0 {
		return ""
	}
	return w.ContainerTitle[0]
}
