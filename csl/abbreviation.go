package csl

// AbbreviationProvider supplies named abbreviation lists.
type AbbreviationProvider interface {
	// Abbreviations returns the list with the given name, or nil.
	Abbreviations(name string) map[string]string
}

// DefaultAbbreviationProvider keeps abbreviation lists in memory.
// It is not safe for concurrent modification.
type DefaultAbbreviationProvider struct {
	lists map[string]map[string]string
}

// NewDefaultAbbreviationProvider creates an empty provider.
func NewDefaultAbbreviationProvider() *DefaultAbbreviationProvider {
	return &DefaultAbbreviationProvider{
		lists: make(map[string]map[string]string),
	}
}

// Add registers an abbreviation in the named list.
func (p *DefaultAbbreviationProvider) Add(list, full, abbreviated string) {
	if p.lists[list] == nil {
		p.lists[list] = make(map[string]string)
	}
	p.lists[list][full] = abbreviated
}

// Abbreviations implements AbbreviationProvider.
func (p *DefaultAbbreviationProvider) Abbreviations(name string) map[string]string {
	src, ok := p.lists[name]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
