// Package registration implements the registration form: the field rule
// table, whole-form and single-field validation, one-shot submission and the
// HTTP service that renders the form and re-validates fields live through
// Datastar.
//
// The rules are pure. Country membership is read through a countries.Lookup,
// normally the *countries.Catalog loaded at startup, so validation never
// touches the network.
//
//	catalog := countries.NewCatalog(countries.NewClient(cfg))
//	catalog.Load(ctx)
//
//	form := registration.NewForm(catalog, registration.WithOnSubmit(store))
//	r.Mount("/", registration.NewService(form, catalog).Handle())
package registration
