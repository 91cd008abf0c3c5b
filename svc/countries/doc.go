// Package countries loads the list of selectable countries for the
// registration form.
//
// Client fetches a REST Countries style payload (an array of objects with
// name.common and flags.svg) with a single GET and maps it to Entry values.
// Catalog owns the resulting list for one form lifetime: Load starts the
// fetch once in the background, failures are logged and leave the list
// empty, and a result arriving after Close is ignored.
//
//	catalog := countries.NewCatalogFromConfig(cfg, nil, countries.WithLogger(log))
//	catalog.Load(context.Background())
//	defer catalog.Close()
//
//	if catalog.Contains("Poland") { ... }
package countries
