package countries

import "time"

// DefaultURL is the public REST Countries endpoint limited to the two
// fields the form uses.
const DefaultURL = "https://restcountries.com/v3.1/all?fields=name,flags"

// Config configures the catalog fetch.
type Config struct {
	URL string `env:"COUNTRIES_URL" envDefault:"https://restcountries.com/v3.1/all?fields=name,flags"`
	// FetchTimeout bounds the single fetch attempt. Zero means no timeout.
	FetchTimeout time.Duration `env:"COUNTRIES_FETCH_TIMEOUT" envDefault:"0s"`
	// Sort orders entries by name using the collation rules of SortLanguage.
	Sort         bool   `env:"COUNTRIES_SORT" envDefault:"true"`
	SortLanguage string `env:"COUNTRIES_SORT_LANGUAGE" envDefault:"en"`
}
