package content

import (
	"fmt"
	"sync/atomic"

	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/spf13/afero"
)

// Catalog serves the current content snapshot to concurrent readers. Reload
// swaps in a new snapshot atomically; a failed reload keeps the old one.
type Catalog struct {
	fs      afero.Fs
	md      *Markdown
	current atomic.Pointer[Snapshot]
}

// NewCatalog loads and validates the content in fsys.
func NewCatalog(fsys afero.Fs) (*Catalog, error) {
	c := &Catalog{fs: fsys, md: NewMarkdown()}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the filesystem. The current snapshot is only replaced when
// the new content loads and validates.
func (c *Catalog) Reload() error {
	snap, err := Load(c.fs, c.md)
	if err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	c.current.Store(snap)
	return nil
}

func (c *Catalog) snapshot() *Snapshot {
	return c.current.Load()
}

// Site returns the site-wide settings.
func (c *Catalog) Site() Site {
	return c.snapshot().Site
}

// Page returns the page with the given slug.
func (c *Catalog) Page(slug string) (*Page, error) {
	return c.snapshot().Page(slug)
}

// Home returns the home page.
func (c *Catalog) Home() (*Page, error) {
	for _, p := range c.snapshot().order {
		if p.Kind == KindHome {
			return p, nil
		}
	}
	return nil, domain.NotFound("home page is not defined")
}

// Service returns the service page with the given slug.
func (c *Catalog) Service(slug string) (*Page, error) {
	p, err := c.Page(slug)
	if err != nil {
		return nil, err
	}
	if p.Kind != KindService {
		return nil, domain.NotFound(fmt.Sprintf("service %q not found", slug))
	}
	return p, nil
}

// Pages returns every page in display order.
func (c *Catalog) Pages() []*Page {
	return c.snapshot().Pages()
}

// Services returns the service pages in display order.
func (c *Catalog) Services() []*Page {
	return c.snapshot().Services()
}

// Page returns the page with the given slug.
func (s *Snapshot) Page(slug string) (*Page, error) {
	p, ok := s.pages[slug]
	if !ok {
		return nil, domain.NotFound(fmt.Sprintf("page %q not found", slug))
	}
	return p, nil
}

// Pages returns every page in display order.
func (s *Snapshot) Pages() []*Page {
	out := make([]*Page, len(s.order))
	copy(out, s.order)
	return out
}

// Services returns the service pages in display order.
func (s *Snapshot) Services() []*Page {
	var out []*Page
	for _, p := range s.order {
		if p.Kind == KindService {
			out = append(out, p)
		}
	}
	return out
}
