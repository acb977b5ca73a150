package csl

import "fmt"

// VariableWrapper decorates a rendered variable value of an item.
type VariableWrapper func(item *Item, name, value string) string

// Builder configures and creates a Processor.
// Call Processor.Close when done with the processor.
type Builder struct {
	itemDataProvider     ItemDataProvider
	localeProvider       LocaleProvider
	abbreviationProvider AbbreviationProvider
	variableWrapper      VariableWrapper
	style                string
	lang                 string
	forceLang            bool
	experimentalMode     bool
}

// NewBuilder creates a Builder with the default locale and abbreviation providers.
func NewBuilder() *Builder {
	return &Builder{
		localeProvider:       DefaultLocaleProvider{},
		abbreviationProvider: NewDefaultAbbreviationProvider(),
		lang:                 DefaultLang,
	}
}

// BuilderFromConfig creates a Builder from cfg. When cfg.LocaleDir is set the
// locales are read from that directory; when cfg.ItemsFile is set the items
// are loaded from it.
func BuilderFromConfig(cfg Config) (*Builder, error) {
	b := NewBuilder().
		Style(cfg.Style).
		Lang(cfg.Lang).
		ForceLang(cfg.ForceLang).
		ExperimentalMode(cfg.ExperimentalMode)

	if cfg.LocaleDir != "" {
		b.LocaleProvider(DirLocaleProvider{Dir: cfg.LocaleDir})
	}
	if cfg.ItemsFile != "" {
		items, err := LoadItems(cfg.ItemsFile)
		if err != nil {
			return nil, err
		}
		b.ItemDataProvider(items)
	}
	return b, nil
}

// ItemDataProvider sets the source of citation items.
func (b *Builder) ItemDataProvider(p ItemDataProvider) *Builder {
	b.itemDataProvider = p
	return b
}

// LocaleProvider sets an optional locale provider.
func (b *Builder) LocaleProvider(p LocaleProvider) *Builder {
	b.localeProvider = p
	return b
}

// AbbreviationProvider sets an optional abbreviation provider.
func (b *Builder) AbbreviationProvider(p AbbreviationProvider) *Builder {
	b.abbreviationProvider = p
	return b
}

// VariableWrapper sets an optional wrapper for rendered variables.
func (b *Builder) VariableWrapper(w VariableWrapper) *Builder {
	b.variableWrapper = w
	return b
}

// Style sets the citation style, either serialized or by name (e.g. "ieee").
func (b *Builder) Style(style string) *Builder {
	b.style = style
	return b
}

// Lang sets the RFC 4646 identifier of the citation locale.
func (b *Builder) Lang(lang string) *Builder {
	b.lang = lang
	return b
}

// ForceLang makes the configured locale override the style's default locale.
func (b *Builder) ForceLang(force bool) *Builder {
	b.forceLang = force
	return b
}

// ExperimentalMode enables the experimental processor.
func (b *Builder) ExperimentalMode(enabled bool) *Builder {
	b.experimentalMode = enabled
	return b
}

// Build creates the Processor. It fails when no item data provider or style
// is set, when the locale is invalid, or when the locale cannot be loaded.
func (b *Builder) Build() (*Processor, error) {
	if b.itemDataProvider == nil {
		return nil, ErrNoItemDataProvider
	}
	if b.style == "" {
		return nil, ErrNoStyle
	}

	lang, err := ParseLang(b.lang)
	if err != nil {
		return nil, err
	}

	localeProvider := b.localeProvider
	if localeProvider == nil {
		localeProvider = DefaultLocaleProvider{}
	}
	locale, err := localeProvider.RetrieveLocale(lang)
	if err != nil {
		return nil, fmt.Errorf("load locale %s: %w", lang, err)
	}

	abbreviations := b.abbreviationProvider
	if abbreviations == nil {
		abbreviations = NewDefaultAbbreviationProvider()
	}

	return &Processor{
		items:         b.itemDataProvider,
		abbreviations: abbreviations,
		wrapper:       b.variableWrapper,
		style:         b.style,
		lang:          lang,
		forceLang:     b.forceLang,
		experimental:  b.experimentalMode,
		locale:        locale,
	}, nil
}
