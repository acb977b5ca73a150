// Package citekit provides tools for preparing bibliographic data for
// citation processors.
//
// citekit is organised as independent subpackages:
//
//   - bibtex: Page field normalisation (PageRange, ParsePage)
//   - csl: Processor configuration, builder and data providers
//   - shell: Interactive shell with locale, style and page commands
//
// # Quick Start
//
// Page ranges:
//
//	import "github.com/randalmurphal/citekit/bibtex"
//	pr, err := bibtex.ParsePage("10--20,30–40")
//	// pr.Literal == "10-20,30-40", pr.PageFirst == "10", *pr.NumberOfPages == 22
//
// Processor:
//
//	import "github.com/randalmurphal/citekit/csl"
//	proc, err := csl.NewBuilder().
//	    ItemDataProvider(csl.NewListItemDataProvider(items...)).
//	    Style("ieee").
//	    Lang("de-DE").
//	    Build()
//
// The bibtex package has no dependency on configuration; callers pass raw
// field values in and receive plain values back.
package citekit
