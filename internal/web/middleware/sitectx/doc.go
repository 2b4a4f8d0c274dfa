// Package sitectx provides the middleware that builds the per-request site
// context.
//
// The language is taken from the language cookie, then from the
// Accept-Language header, then from the configured default. The theme is
// taken from the theme cookie, then from the configured default. Unknown
// cookie values are ignored.
//
// Usage:
//
//	app.Use(sitectx.New(sitectx.Config{Catalog: catalog}))
//
// Handlers read the context with handler.Site.
package sitectx
