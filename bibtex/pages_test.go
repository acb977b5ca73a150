package bibtex

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

// =============================================================================
// ParsePage Tests
// =============================================================================

func TestParsePage(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		literal   string
		pageFirst string
		pages     *int
	}{
		{
			name:      "single page",
			input:     "10",
			literal:   "10",
			pageFirst: "10",
			pages:     intPtr(1),
		},
		{
			name:      "simple range",
			input:     "10-20",
			literal:   "10-20",
			pageFirst: "10",
			pages:     intPtr(11),
		},
		{
			name:      "double hyphen",
			input:     "10--20",
			literal:   "10-20",
			pageFirst: "10",
			pages:     intPtr(11),
		},
		{
			name:      "triple hyphen",
			input:     "10---20",
			literal:   "10-20",
			pageFirst: "10",
			pages:     intPtr(11),
		},
		{
			name:      "en dash",
			input:     "10–20",
			literal:   "10-20",
			pageFirst: "10",
			pages:     intPtr(11),
		},
		{
			name:      "two ranges",
			input:     "10-20,30--40",
			literal:   "10-20,30-40",
			pageFirst: "10",
			pages:     intPtr(22),
		},
		{
			name:      "complex",
			input:     "10-20,30--40,45,50–55,5",
			literal:   "10-20,30-40,45,50-55,5",
			pageFirst: "5",
			pages:     intPtr(30),
		},
		{
			name:      "unknown last page",
			input:     "10-??",
			literal:   "10-??",
			pageFirst: "10",
			pages:     nil,
		},
		{
			name:      "unknown last page poisons total",
			input:     "1-5,10-??,20",
			literal:   "1-5,10-??,20",
			pageFirst: "1",
			pages:     nil,
		},
		{
			name:      "pseudo range collapses",
			input:     "10-10",
			literal:   "10",
			pageFirst: "10",
			pages:     intPtr(1),
		},
		{
			name:      "collapse compares numerically",
			input:     "10-010",
			literal:   "10",
			pageFirst: "10",
			pages:     intPtr(1),
		},
		{
			name:      "leading zeros kept in tokens",
			input:     "007-009",
			literal:   "007-009",
			pageFirst: "007",
			pages:     intPtr(3),
		},
		{
			name:      "mixed separator run",
			input:     "3-–-7",
			literal:   "3-7",
			pageFirst: "3",
			pages:     intPtr(5),
		},
		{
			name:      "blanks around tokens",
			input:     "10 -- 20, 30",
			literal:   "10-20,30",
			pageFirst: "10",
			pages:     intPtr(12),
		},
		{
			name:      "missing last page",
			input:     "10-",
			literal:   "10-",
			pageFirst: "10",
			pages:     nil,
		},
		{
			name:      "reversed range has unknown count",
			input:     "20-10",
			literal:   "20-10",
			pageFirst: "20",
			pages:     nil,
		},
		{
			name:      "first occurrence wins on equal values",
			input:     "30,05,5",
			literal:   "30,05,5",
			pageFirst: "05",
			pages:     intPtr(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, err := ParsePage(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.literal, pr.Literal)
			assert.Equal(t, tt.pageFirst, pr.PageFirst)
			assert.Equal(t, tt.pages, pr.NumberOfPages)
		})
	}
}

func TestParsePage_Idempotent(t *testing.T) {
	inputs := []string{
		"10",
		"10--20",
		"10–20,30---40",
		"10-20,30--40,45,50–55,5",
		"10-??",
		"10-10,12",
		"20-10",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := ParsePage(input)
			require.NoError(t, err)

			second, err := ParsePage(first.Literal)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestParsePage_RangeLaw(t *testing.T) {
	for a := 1; a < 30; a += 7 {
		for b := a + 1; b < 60; b += 11 {
			pr, err := ParsePage(strconv.Itoa(a) + "-" + strconv.Itoa(b))
			require.NoError(t, err)

			assert.Equal(t, strconv.Itoa(a)+"-"+strconv.Itoa(b), pr.Literal)
			assert.Equal(t, strconv.Itoa(a), pr.PageFirst)
			n, ok := pr.Pages()
			require.True(t, ok)
			assert.Equal(t, b-a+1, n)
		}
	}
}

func TestParsePage_CountOverflow(t *testing.T) {
	maxInt := strconv.Itoa(math.MaxInt)
	half := strconv.Itoa(math.MaxInt/2 + 1)

	tests := []struct {
		name    string
		input   string
		literal string
		pages   *int
	}{
		{
			name:    "largest countable range",
			input:   "1-" + maxInt,
			literal: "1-" + maxInt,
			pages:   intPtr(math.MaxInt),
		},
		{
			name:    "range count exceeds int",
			input:   "0-" + maxInt,
			literal: "0-" + maxInt,
			pages:   nil,
		},
		{
			name:    "sum of two full ranges exceeds int",
			input:   "1-" + maxInt + ",1-" + maxInt,
			literal: "1-" + maxInt + ",1-" + maxInt,
			pages:   nil,
		},
		{
			name:    "sum of two half ranges exceeds int",
			input:   "1-" + half + ",1-" + half,
			literal: "1-" + half + ",1-" + half,
			pages:   nil,
		},
		{
			name:    "single page after full range exceeds int",
			input:   "1-" + maxInt + ",5",
			literal: "1-" + maxInt + ",5",
			pages:   nil,
		},
		{
			name:    "sum reaching exactly max int",
			input:   "1-" + strconv.Itoa(math.MaxInt-1) + ",7",
			literal: "1-" + strconv.Itoa(math.MaxInt-1) + ",7",
			pages:   intPtr(math.MaxInt),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, err := ParsePage(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.literal, pr.Literal)
			assert.Equal(t, tt.pages, pr.NumberOfPages)
			if n, ok := pr.Pages(); ok {
				assert.Positive(t, n)
			}
		})
	}
}

func TestParsePage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		index   int
	}{
		{name: "empty", input: "", wantErr: ErrEmptyPages, index: -1},
		{name: "blank", input: "  \t", wantErr: ErrEmptyPages, index: -1},
		{name: "no digits", input: "abc", wantErr: ErrMalformedStart, index: 0},
		{name: "unknown start", input: "??-10", wantErr: ErrMalformedStart, index: 0},
		{name: "missing start", input: "-10", wantErr: ErrMalformedStart, index: 0},
		{name: "roman numerals", input: "1-5,iv-x", wantErr: ErrMalformedStart, index: 1},
		{name: "empty segment", input: "10,,20", wantErr: ErrMalformedStart, index: 1},
		{name: "trailing comma", input: "10-20,", wantErr: ErrMalformedStart, index: 1},
		{name: "signed start", input: "+5", wantErr: ErrMalformedStart, index: 0},
		{name: "two separators", input: "10-20-30", wantErr: ErrMalformedSegment, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, err := ParsePage(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, PageRange{}, pr)

			var pageErr *PageError
			require.True(t, errors.As(err, &pageErr))
			assert.Equal(t, tt.input, pageErr.Input)
			assert.Equal(t, tt.index, pageErr.Index)
		})
	}
}

func TestPageError_Message(t *testing.T) {
	_, err := ParsePage("1-5,x")
	require.Error(t, err)
	assert.Equal(t, `parse pages "1-5,x": segment 1 ("x"): segment must start with a page number`, err.Error())

	_, err = ParsePage("")
	require.Error(t, err)
	assert.Equal(t, `parse pages "": empty page reference`, err.Error())
}

func TestParsePage_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pr, err := ParsePage("10-20,30--40,45,50–55,5")
			assert.NoError(t, err)
			assert.Equal(t, "5", pr.PageFirst)
		}()
	}
	wg.Wait()
}

// =============================================================================
// Accessor Tests
// =============================================================================

func TestPageRange_Accessors(t *testing.T) {
	single := MustParsePage("42")
	assert.True(t, single.IsSinglePage())
	assert.Equal(t, "42", single.String())

	pseudo := MustParsePage("42-42")
	assert.True(t, pseudo.IsSinglePage())

	rng := MustParsePage("42-44")
	assert.False(t, rng.IsSinglePage())

	unknown := MustParsePage("42-??")
	assert.False(t, unknown.IsSinglePage())
	_, ok := unknown.Pages()
	assert.False(t, ok)
}

func TestPageRange_Variables(t *testing.T) {
	vars := MustParsePage("10--20,5").Variables()
	assert.Equal(t, map[string]string{
		"page":            "10-20,5",
		"page-first":      "5",
		"number-of-pages": "12",
	}, vars)

	vars = MustParsePage("10-??").Variables()
	assert.Equal(t, map[string]string{
		"page":       "10-??",
		"page-first": "10",
	}, vars)
}

func TestMustParsePage_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParsePage("n/a")
	})
}

func TestParsePages(t *testing.T) {
	prs, err := ParsePages([]string{"1-3", "7"})
	require.NoError(t, err)
	require.Len(t, prs, 2)
	assert.Equal(t, "1-3", prs[0].Literal)
	assert.Equal(t, "7", prs[1].Literal)

	_, err = ParsePages([]string{"1-3", "", "7"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPages)
	assert.Contains(t, err.Error(), "value 1")
}

// =============================================================================
// Internal helper Tests
// =============================================================================

func TestSplitRange(t *testing.T) {
	tests := []struct {
		part   string
		start  string
		end    string
		hasEnd bool
	}{
		{part: "12", start: "12"},
		{part: "12-13", start: "12", end: "13", hasEnd: true},
		{part: "12----13", start: "12", end: "13", hasEnd: true},
		{part: "12–13", start: "12", end: "13", hasEnd: true},
		{part: "12-", start: "12", end: "", hasEnd: true},
	}

	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			start, end, hasEnd, err := splitRange(tt.part)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.hasEnd, hasEnd)
		})
	}
}

func TestParseNumber(t *testing.T) {
	n, ok := parseNumber("0042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, bad := range []string{"", "??", "-1", "+1", "1 2", "12a", "99999999999999999999999"} {
		_, ok := parseNumber(bad)
		assert.False(t, ok, "parseNumber(%q)", bad)
	}
}
