package countries

import "context"

// Entry is one selectable country: its common display name and a link to
// an SVG flag. Entries are immutable once fetched.
type Entry struct {
	Name    string `json:"name"`
	FlagURL string `json:"flagUrl"`
}

// Lookup answers catalog membership by display name.
type Lookup interface {
	Contains(name string) bool
}

// Source retrieves the full country list.
type Source interface {
	Fetch(ctx context.Context) ([]Entry, error)
}
