package bibtex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PageRange is the canonical form of a bibliographic "page" field.
type PageRange struct {
	// Literal is the normalised field value. Segments keep their input order,
	// every range separator is a single hyphen and a range whose first and
	// last page are equal is written as that page alone.
	Literal string `json:"literal" yaml:"literal"`

	// PageFirst is the start token with the smallest numeric value across
	// all segments, as written in the input.
	PageFirst string `json:"page_first" yaml:"page_first"`

	// NumberOfPages is the total page count, or nil when the last page of
	// some segment is not a number or the total does not fit in an int.
	NumberOfPages *int `json:"number_of_pages,omitempty" yaml:"number_of_pages,omitempty"`
}

// Pages returns the total page count and whether it is known.
func (p PageRange) Pages() (int, bool) {
	if p.NumberOfPages == nil {
		return 0, false
	}
	return *p.NumberOfPages, true
}

// IsSinglePage reports whether the reference is known to span exactly one page.
func (p PageRange) IsSinglePage() bool {
	n, ok := p.Pages()
	return ok && n == 1
}

// String returns the normalised literal.
func (p PageRange) String() string {
	return p.Literal
}

// Variables returns the CSL variables derived from the page range.
// number-of-pages is only present when the count is known.
func (p PageRange) Variables() map[string]string {
	vars := map[string]string{
		"page":       p.Literal,
		"page-first": p.PageFirst,
	}
	if n, ok := p.Pages(); ok {
		vars["number-of-pages"] = strconv.Itoa(n)
	}
	return vars
}

// segment is one resolved comma-separated unit of a page field.
type segment struct {
	start  string
	end    string
	hasEnd bool

	first int

	// count is only meaningful when countKnown is set.
	count      int
	countKnown bool

	collapsed bool
}

// literal renders the segment in canonical form.
func (s segment) literal() string {
	if !s.hasEnd || s.collapsed {
		return s.start
	}
	return s.start + "-" + s.end
}

// ParsePage parses a page field value such as "10-20", "10--20,30–40" or
// "10-??". The whole input is rejected when any segment does not start
// with a page number.
func ParsePage(raw string) (PageRange, error) {
	if strings.TrimSpace(raw) == "" {
		return PageRange{}, newPageError(raw, "", -1, ErrEmptyPages)
	}

	parts := strings.Split(raw, ",")
	segments := make([]segment, 0, len(parts))
	for i, part := range parts {
		start, end, hasEnd, err := splitRange(part)
		if err != nil {
			return PageRange{}, newPageError(raw, part, i, err)
		}
		seg, err := resolveSegment(start, end, hasEnd)
		if err != nil {
			return PageRange{}, newPageError(raw, part, i, err)
		}
		segments = append(segments, seg)
	}

	return aggregate(segments), nil
}

// MustParsePage is like ParsePage but panics on error.
// Use only with values known to be valid (e.g., in tests).
func MustParsePage(raw string) PageRange {
	pr, err := ParsePage(raw)
	if err != nil {
		panic(fmt.Sprintf("bibtex.MustParsePage(%q): %v", raw, err))
	}
	return pr
}

// ParsePages parses several page field values. It stops at the first
// failure and reports the index of the offending value.
func ParsePages(raws []string) ([]PageRange, error) {
	result := make([]PageRange, 0, len(raws))
	for i, raw := range raws {
		pr, err := ParsePage(raw)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		result = append(result, pr)
	}
	return result, nil
}

// isSeparator reports whether r belongs to a range separator run.
func isSeparator(r rune) bool {
	return r == '-' || r == '–'
}

// trimToken strips blanks around a token.
func trimToken(s string) string {
	return strings.Trim(s, " \t")
}

// splitRange splits a segment at its first separator run.
func splitRange(part string) (start, end string, hasEnd bool, err error) {
	sepStart := strings.IndexFunc(part, isSeparator)
	if sepStart < 0 {
		return trimToken(part), "", false, nil
	}

	rest := part[sepStart:]
	sepLen := len(rest) - len(strings.TrimLeftFunc(rest, isSeparator))
	start = trimToken(part[:sepStart])
	end = trimToken(rest[sepLen:])

	if strings.IndexFunc(end, isSeparator) >= 0 {
		return "", "", false, ErrMalformedSegment
	}
	return start, end, true, nil
}

// parseNumber parses a plain decimal page number. Signs and blanks are
// not accepted.
func parseNumber(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

// resolveSegment computes the numeric extent of a segment. An end token
// that is not a number leaves the count unknown but is not an error.
func resolveSegment(start, end string, hasEnd bool) (segment, error) {
	first, ok := parseNumber(start)
	if !ok {
		return segment{}, ErrMalformedStart
	}

	seg := segment{
		start:  start,
		end:    end,
		hasEnd: hasEnd,
		first:  first,
	}

	if !hasEnd {
		seg.count, seg.countKnown = 1, true
		return seg, nil
	}

	last, ok := parseNumber(end)
	if !ok {
		return seg, nil
	}
	if last == first {
		seg.collapsed = true
	}
	// A count that does not fit in an int stays unknown.
	if last >= first && last-first < math.MaxInt {
		seg.count, seg.countKnown = last-first+1, true
	}
	return seg, nil
}

// aggregate folds resolved segments into a PageRange.
func aggregate(segments []segment) PageRange {
	literals := make([]string, len(segments))
	minIdx := 0
	total := 0
	known := true

	for i, seg := range segments {
		literals[i] = seg.literal()
		if seg.first < segments[minIdx].first {
			minIdx = i
		}
		if seg.countKnown && known && total <= math.MaxInt-seg.count {
			total += seg.count
		} else {
			known = false
		}
	}

	pr := PageRange{
		Literal:   strings.Join(literals, ","),
		PageFirst: segments[minIdx].start,
	}
	if known {
		pr.NumberOfPages = &total
	}
	return pr
}
