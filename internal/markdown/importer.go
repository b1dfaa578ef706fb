// Package markdown imports frontmatter-annotated markdown files as news
// articles. Editors can keep news in a git-tracked content directory and sync
// it into the catalog with the news-import command.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/locale"
	"github.com/alqalam/campus-cms/pkg/interfaces"
)

var (
	ErrCatalogRequired = errors.New("markdown: catalog service is required")
	ErrTitleMissing    = errors.New("markdown: frontmatter title is required")
)

// Document is one parsed markdown file.
type Document struct {
	Path    string
	Slug    string
	Title   locale.Text
	Summary locale.Text
	Author  string
	Tags    []string
	Date    time.Time
	Draft   bool
	Body    string
}

type frontMatterEnvelope struct {
	Title     string    `yaml:"title"`
	TitleAR   string    `yaml:"title_ar"`
	Summary   string    `yaml:"summary"`
	SummaryAR string    `yaml:"summary_ar"`
	Slug      string    `yaml:"slug"`
	Author    string    `yaml:"author"`
	Tags      []string  `yaml:"tags"`
	Date      time.Time `yaml:"date"`
	Draft     bool      `yaml:"draft"`
}

// ParseDocument extracts frontmatter and body from one markdown source.
func ParseDocument(path string, source []byte) (*Document, error) {
	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("markdown: parse frontmatter in %s: %w", path, err)
	}
	if strings.TrimSpace(meta.Title) == "" && strings.TrimSpace(meta.TitleAR) == "" {
		return nil, fmt.Errorf("%w: %s", ErrTitleMissing, path)
	}

	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		base := filepath.Base(path)
		slug = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return &Document{
		Path:    path,
		Slug:    slug,
		Title:   locale.NewText(meta.Title, meta.TitleAR),
		Summary: locale.NewText(meta.Summary, meta.SummaryAR),
		Author:  strings.TrimSpace(meta.Author),
		Tags:    meta.Tags,
		Date:    meta.Date,
		Draft:   meta.Draft,
		Body:    string(body),
	}, nil
}

// LoadDir parses every markdown file directly under dir in the given
// filesystem, sorted by path for deterministic import order.
func LoadDir(fsys fs.FS, dir string) ([]*Document, error) {
	matches, err := fs.Glob(fsys, filepath.ToSlash(filepath.Join(dir, "*.md")))
	if err != nil {
		return nil, fmt.Errorf("markdown: scan %s: %w", dir, err)
	}
	sort.Strings(matches)

	docs := make([]*Document, 0, len(matches))
	for _, path := range matches {
		source, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("markdown: read %s: %w", path, err)
		}
		doc, err := ParseDocument(path, source)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ImporterOption configures the importer.
type ImporterOption func(*Importer)

// WithLogger attaches a logger to the importer.
func WithLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.log = logger
		}
	}
}

// Importer persists parsed documents as news articles.
type Importer struct {
	catalog catalog.Service
	log     interfaces.Logger
}

// NewImporter builds an importer writing into the given catalog service.
func NewImporter(svc catalog.Service, opts ...ImporterOption) *Importer {
	imp := &Importer{catalog: svc, log: logging.NoOp()}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ImportDocuments upserts articles for the given documents. Drafts import as
// unpublished; a document with a date publishes at that instant. One bad
// document does not abort the run; failures are collected per document.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*Document) (*ImportResult, error) {
	if i.catalog == nil {
		return nil, ErrCatalogRequired
	}

	result := &ImportResult{}
	for _, doc := range docs {
		req := catalog.SaveArticleRequest{
			Slug:    doc.Slug,
			Title:   doc.Title,
			Summary: doc.Summary,
			Body:    doc.Body,
			Author:  doc.Author,
			Tags:    doc.Tags,
		}
		if !doc.Draft && !doc.Date.IsZero() {
			published := doc.Date
			req.PublishedAt = &published
		}

		if existing, err := i.catalog.GetArticleBySlug(ctx, doc.Slug); err == nil {
			req.ID = existing.ID
		}

		if _, err := i.catalog.SaveArticle(ctx, req); err != nil {
			i.log.Warn("document failed to import", "path", doc.Path, "error", err.Error())
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", doc.Path, err))
			continue
		}
		i.log.Debug("document imported", "path", doc.Path, "slug", doc.Slug)
		result.Imported++
	}
	return result, nil
}

// ImportDir loads and imports every markdown file directly under dir.
func (i *Importer) ImportDir(ctx context.Context, fsys fs.FS, dir string) (*ImportResult, error) {
	docs, err := LoadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	return i.ImportDocuments(ctx, docs)
}
