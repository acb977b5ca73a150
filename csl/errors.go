package csl

import "errors"

// Sentinel errors for processor construction and data access.
var (
	// ErrNoItemDataProvider indicates Build was called without an item source.
	ErrNoItemDataProvider = errors.New("item data provider is required")

	// ErrNoStyle indicates Build was called without a citation style.
	ErrNoStyle = errors.New("citation style is required")

	// ErrInvalidLang indicates the locale is not a valid language tag.
	ErrInvalidLang = errors.New("invalid language tag")

	// ErrItemNotFound indicates the requested citation item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrLocaleNotFound indicates no locale document exists for a language.
	ErrLocaleNotFound = errors.New("locale not found")

	// ErrUnsupportedFormat indicates a file extension that cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrClosed indicates the processor has been closed.
	ErrClosed = errors.New("processor closed")
)
