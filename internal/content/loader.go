package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/nfrund/ledgerline/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	siteFile = "site.yaml"
	pagesDir = "pages"
)

//go:embed defaults
var defaultsFS embed.FS

// Source returns the filesystem content is read from: the embedded defaults
// when dir is empty, otherwise dir on disk.
func Source(dir string) (afero.Fs, error) {
	if strings.TrimSpace(dir) == "" {
		sub, err := fs.Sub(defaultsFS, "defaults")
		if err != nil {
			return nil, fmt.Errorf("open embedded content: %w", err)
		}
		return afero.FromIOFS{FS: sub}, nil
	}

	osFs := afero.NewOsFs()
	ok, err := afero.DirExists(osFs, dir)
	if err != nil {
		return nil, fmt.Errorf("stat content dir %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("content dir %s does not exist", dir)
	}
	return afero.NewBasePathFs(osFs, dir), nil
}

// Snapshot is a fully loaded, immutable set of content.
type Snapshot struct {
	Site  Site
	pages map[string]*Page
	order []*Page
}

// Load reads site.yaml and pages/*.yaml from fsys and renders markdown
// bodies. Pages are ordered by their order field, then by slug.
func Load(fsys afero.Fs, md *Markdown) (*Snapshot, error) {
	raw, err := afero.ReadFile(fsys, siteFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", siteFile, err)
	}
	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("parse %s: %w", siteFile, err)
	}

	files, err := afero.Glob(fsys, path.Join(pagesDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	snap := &Snapshot{
		Site:  site,
		pages: make(map[string]*Page, len(files)),
	}
	for _, file := range files {
		page, err := loadPage(fsys, file, md)
		if err != nil {
			return nil, err
		}
		if _, dup := snap.pages[page.Slug]; dup {
			return nil, fmt.Errorf("%s: duplicate slug %q", file, page.Slug)
		}
		snap.pages[page.Slug] = page
		snap.order = append(snap.order, page)
	}

	sort.SliceStable(snap.order, func(i, j int) bool {
		if snap.order[i].Order != snap.order[j].Order {
			return snap.order[i].Order < snap.order[j].Order
		}
		return snap.order[i].Slug < snap.order[j].Slug
	})
	return snap, nil
}

func loadPage(fsys afero.Fs, file string, md *Markdown) (*Page, error) {
	raw, err := afero.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	var page Page
	if err := yaml.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	if page.Slug == "" {
		page.Slug = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	if page.Kind == "" {
		page.Kind = KindPage
	}
	if page.Title == "" && page.Kind != KindHome {
		page.Title = TitleFromSlug(page.Slug)
	}
	if page.Breadcrumbs == nil {
		page.Breadcrumbs = defaultBreadcrumbs(&page)
	}

	page.BodyHTML, err = md.Render(page.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	page.FAQAnswersHTML = make([]string, len(page.FAQs))
	for i, f := range page.FAQs {
		if page.FAQAnswersHTML[i], err = md.Render(f.Answer); err != nil {
			return nil, fmt.Errorf("%s: faq %d: %w", file, i+1, err)
		}
	}
	return &page, nil
}

func defaultBreadcrumbs(p *Page) []domain.Crumb {
	home := domain.Crumb{Label: "Home", Href: "/"}
	switch p.Kind {
	case KindHome:
		return []domain.Crumb{home}
	case KindService:
		return []domain.Crumb{home, {Label: "Services", Href: "/services"}, {Label: p.Title, Href: p.Path()}}
	default:
		return []domain.Crumb{home, {Label: p.Title, Href: p.Path()}}
	}
}
