package csl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocaleProvider supplies serialized CSL locale documents.
type LocaleProvider interface {
	RetrieveLocale(lang string) (string, error)
}

// DefaultLocaleProvider returns a minimal built-in locale for any valid tag.
type DefaultLocaleProvider struct{}

// RetrieveLocale implements LocaleProvider.
func (DefaultLocaleProvider) RetrieveLocale(lang string) (string, error) {
	canonical, err := ParseLang(lang)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(defaultLocaleXML, canonical), nil
}

const defaultLocaleXML = `<?xml version="1.0" encoding="utf-8"?>
<locale xmlns="http://purl.org/net/xbiblio/csl" version="1.0" xml:lang="%s">
  <terms>
    <term name="page" form="short">
      <single>p.</single>
      <multiple>pp.</multiple>
    </term>
  </terms>
</locale>
`

// DirLocaleProvider reads locales-<lang>.xml files from a directory.
type DirLocaleProvider struct {
	Dir string
}

// RetrieveLocale implements LocaleProvider.
func (p DirLocaleProvider) RetrieveLocale(lang string) (string, error) {
	canonical, err := ParseLang(lang)
	if err != nil {
		return "", err
	}

	path := filepath.Join(p.Dir, "locales-"+canonical+".xml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s (%s)", ErrLocaleNotFound, canonical, path)
		}
		return "", fmt.Errorf("read locale file: %w", err)
	}
	return string(data), nil
}
