package shell

import (
	"sync"

	"github.com/randalmurphal/citekit/csl"
)

// Context holds the settings a shell session works with.
// It is safe for concurrent use; a config watcher may call Apply while
// commands run.
type Context struct {
	mu  sync.RWMutex
	cfg csl.Config
}

// NewContext creates a Context starting from cfg.
func NewContext(cfg csl.Config) *Context {
	return &Context{cfg: cfg}
}

// Config returns a copy of the current settings.
func (c *Context) Config() csl.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Apply replaces all settings.
func (c *Context) Apply(cfg csl.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

// Locale returns the current citation locale.
func (c *Context) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.Lang
}

// SetLocale validates lang and stores its canonical form.
func (c *Context) SetLocale(lang string) error {
	canonical, err := csl.ParseLang(lang)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Lang = canonical
	return nil
}

// Style returns the current citation style.
func (c *Context) Style() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.Style
}

// SetStyle stores the citation style.
func (c *Context) SetStyle(style string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Style = style
}
