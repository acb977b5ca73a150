package csl

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/randalmurphal/citekit/bibtex"
)

// Processor serves citation items prepared for rendering.
// It is safe for concurrent use.
type Processor struct {
	items         ItemDataProvider
	abbreviations AbbreviationProvider
	wrapper       VariableWrapper

	style        string
	lang         string
	forceLang    bool
	experimental bool
	locale       string

	mu     sync.RWMutex
	closed bool
}

// Style returns the configured citation style.
func (p *Processor) Style() string { return p.style }

// Lang returns the canonical citation locale identifier.
func (p *Processor) Lang() string { return p.lang }

// ForceLang reports whether the locale overrides the style's default.
func (p *Processor) ForceLang() bool { return p.forceLang }

// Experimental reports whether the experimental processor is enabled.
func (p *Processor) Experimental() bool { return p.experimental }

// Locale returns the loaded locale document.
func (p *Processor) Locale() string { return p.locale }

// Item returns the item with the given ID with its page variables
// normalised. A page field that cannot be parsed is kept as written and
// its derived variables are left empty.
func (p *Processor) Item(id string) (*Item, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	item, err := p.items.RetrieveItem(id)
	if err != nil {
		return nil, fmt.Errorf("retrieve item: %w", err)
	}
	normalizePages(item)
	return item, nil
}

// Items returns all items in provider order.
func (p *Processor) Items() ([]*Item, error) {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}

	ids := p.items.IDs()
	items := make([]*Item, 0, len(ids))
	for _, id := range ids {
		item, err := p.Item(id)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Variables returns the CSL variables of an item after page normalisation,
// abbreviation lookup and the configured variable wrapper.
func (p *Processor) Variables(id string) (map[string]string, error) {
	item, err := p.Item(id)
	if err != nil {
		return nil, err
	}

	vars := map[string]string{
		"id": item.ID,
	}
	set := func(name, value string) {
		if value == "" {
			return
		}
		if p.wrapper != nil {
			value = p.wrapper(item, name, value)
		}
		vars[name] = value
	}

	set("type", item.Type)
	set("title", item.Title)
	set("container-title", item.ContainerTitle)
	if short, ok := p.abbreviations.Abbreviations("container-title")[item.ContainerTitle]; ok {
		set("container-title-short", short)
	}
	set("page", item.Page)
	set("page-first", item.PageFirst)
	set("number-of-pages", item.NumberOfPages)
	return vars, nil
}

// Close releases the processor. Further item lookups fail with ErrClosed.
func (p *Processor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	return nil
}

// normalizePages rewrites the page variables of item from its page field.
func normalizePages(item *Item) {
	if item.Page == "" {
		return
	}

	pr, err := bibtex.ParsePage(item.Page)
	if err != nil {
		slog.Warn("keeping unparseable page field",
			slog.String("item", item.ID),
			slog.String("page", item.Page),
			slog.Any("error", err))
		item.PageFirst = ""
		item.NumberOfPages = ""
		return
	}

	item.Page = pr.Literal
	item.PageFirst = pr.PageFirst
	item.NumberOfPages = ""
	if n, ok := pr.Pages(); ok {
		item.NumberOfPages = strconv.Itoa(n)
	}
}
