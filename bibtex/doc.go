// Package bibtex normalises bibliographic field values taken from BibTeX
// and CSL records.
//
// Core types:
//   - PageRange: canonical form of a "page" field value
//   - PageError: describes why a page field could not be parsed
//
// Example usage:
//
//	pr, err := bibtex.ParsePage("10--20,30–40")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pr.Literal)   // 10-20,30-40
//	fmt.Println(pr.PageFirst) // 10
//	if n, ok := pr.Pages(); ok {
//	    fmt.Println(n) // 22
//	}
//
// Segments are separated by commas. Inside a segment any run of ASCII
// hyphens or a U+2013 en-dash separates the first and last page. An end
// token that is not a number (for example "??") is kept as written and
// makes the total page count unknown.
package bibtex
