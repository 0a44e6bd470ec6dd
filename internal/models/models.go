// package models defines the data model for the email comparison tool
package models

// Category identifies which listing an [Entry] belongs to.
type Category int

const (
	InBoth Category = iota
	OnlyNew
	OnlyOld
)

// Categories lists every category in report order.
var Categories = []Category{InBoth, OnlyNew, OnlyOld}

func (c Category) String() string {
	switch c {
	case InBoth:
		return "both"
	case OnlyNew:
		return "only_new"
	case OnlyOld:
		return "only_old"
	default:
		return "unknown"
	}
}

// Title returns the heading used for the category's listing in reports.
func (c Category) Title() string {
	switch c {
	case InBoth:
		return "Email ID found in both files"
	case OnlyNew:
		return "Email ID found in new file but not in old file"
	case OnlyOld:
		return "Email ID found in old file but not in new file"
	default:
		return ""
	}
}

// Source is one side of a comparison: the input file and the validated emails extracted from it.
type Source struct {
	Label  string   // "old" or "new"
	Path   string   // Input file path
	Lines  int      // Number of lines read
	Emails []string // Validated emails in file order, duplicates kept
}

// Entry is one row in a listing.
type Entry struct {
	Email    string `json:"email" yaml:"email"`
	NewCount int    `json:"new_count" yaml:"new_count"`
	OldCount int    `json:"old_count" yaml:"old_count"`
}

// Summary holds the headline counts of a comparison.
type Summary struct {
	TotalNew  int `json:"total_new" yaml:"total_new"`
	TotalOld  int `json:"total_old" yaml:"total_old"`
	UniqueNew int `json:"unique_new" yaml:"unique_new"`
	UniqueOld int `json:"unique_old" yaml:"unique_old"`
	InBoth    int `json:"in_both" yaml:"in_both"`
	OnlyNew   int `json:"only_new" yaml:"only_new"`
	OnlyOld   int `json:"only_old" yaml:"only_old"`
}

// Metric is a labelled summary count.
type Metric struct {
	Label string
	Count int
}

// Metrics returns the summary counts in report order with their display labels.
func (s Summary) Metrics() []Metric {
	return []Metric{
		{"Total email count in new file", s.TotalNew},
		{"Total email count in old file", s.TotalOld},
		{"Total unique email count in new file", s.UniqueNew},
		{"Total unique email count in old file", s.UniqueOld},
		{"Emails found in both files", s.InBoth},
		{"Emails only in new file", s.OnlyNew},
		{"Emails only in old file", s.OnlyOld},
	}
}

// Comparison is the read-only result of comparing an old and a new email multiset.
//
// Both, OnlyNew and OnlyOld are sorted ascending and together partition the union of the two sets.
type Comparison struct {
	TotalOld int            // Length of the old multiset
	TotalNew int            // Length of the new multiset
	OldSet   map[string]struct{}
	NewSet   map[string]struct{}
	OldCount map[string]int // Occurrences per email in the old multiset
	NewCount map[string]int // Occurrences per email in the new multiset
	Both     []string
	OnlyNew  []string
	OnlyOld  []string
}

// Summary computes the headline counts.
func (c *Comparison) Summary() Summary {
	return Summary{
		TotalNew:  c.TotalNew,
		TotalOld:  c.TotalOld,
		UniqueNew: len(c.NewSet),
		UniqueOld: len(c.OldSet),
		InBoth:    len(c.Both),
		OnlyNew:   len(c.OnlyNew),
		OnlyOld:   len(c.OnlyOld),
	}
}

// Emails returns the sorted emails of the given category.
func (c *Comparison) Emails(cat Category) []string {
	switch cat {
	case InBoth:
		return c.Both
	case OnlyNew:
		return c.OnlyNew
	case OnlyOld:
		return c.OnlyOld
	default:
		return nil
	}
}

// Entries returns the listing for a category with per-file counts; absent emails count as 0.
func (c *Comparison) Entries(cat Category) []Entry {
	emails := c.Emails(cat)
	entries := make([]Entry, len(emails))
	for i, email := range emails {
		entries[i] = Entry{Email: email, NewCount: c.NewCount[email], OldCount: c.OldCount[email]}
	}
	return entries
}
