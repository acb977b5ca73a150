package csl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is a citation item using CSL-JSON variable names.
type Item struct {
	ID             string `json:"id" yaml:"id"`
	Type           string `json:"type,omitempty" yaml:"type,omitempty"`
	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	ContainerTitle string `json:"container-title,omitempty" yaml:"container-title,omitempty"`

	// Page is the raw or normalised page field.
	Page string `json:"page,omitempty" yaml:"page,omitempty"`

	// PageFirst and NumberOfPages are derived from Page by the Processor.
	PageFirst     string `json:"page-first,omitempty" yaml:"page-first,omitempty"`
	NumberOfPages string `json:"number-of-pages,omitempty" yaml:"number-of-pages,omitempty"`
}

// ItemDataProvider supplies citation items to a Processor.
type ItemDataProvider interface {
	// RetrieveItem returns the item with the given ID or ErrItemNotFound.
	RetrieveItem(id string) (*Item, error)

	// IDs returns the IDs of all available items in a stable order.
	IDs() []string
}

// ListItemDataProvider serves a fixed list of items.
type ListItemDataProvider struct {
	items map[string]Item
	ids   []string
}

// NewListItemDataProvider creates a provider from items.
// Later items replace earlier ones with the same ID.
func NewListItemDataProvider(items ...Item) *ListItemDataProvider {
	p := &ListItemDataProvider{
		items: make(map[string]Item, len(items)),
		ids:   make([]string, 0, len(items)),
	}
	for _, item := range items {
		if _, exists := p.items[item.ID]; !exists {
			p.ids = append(p.ids, item.ID)
		}
		p.items[item.ID] = item
	}
	return p
}

// RetrieveItem returns a copy of the item with the given ID.
func (p *ListItemDataProvider) RetrieveItem(id string) (*Item, error) {
	item, ok := p.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return &item, nil
}

// IDs returns item IDs in insertion order.
func (p *ListItemDataProvider) IDs() []string {
	ids := make([]string, len(p.ids))
	copy(ids, p.ids)
	return ids
}

// LoadItems reads a CSL-JSON array (.json) or a YAML list (.yaml, .yml) of items.
func LoadItems(path string) (*ListItemDataProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}

	var items []Item
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse items JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse items YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("items file %s: item %d has no id", path, i)
		}
	}
	return NewListItemDataProvider(items...), nil
}
