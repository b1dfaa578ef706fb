package markdown_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/internal/markdown"
	"github.com/alqalam/campus-cms/locale"
)

const sampleDoc = `---
title: New Laboratory Opens
title_ar: افتتاح مختبر جديد
summary: The genomics laboratory is now open.
slug: new-laboratory
author: Press Office
tags:
  - research
date: 2026-03-01T09:00:00Z
---

The **genomics** laboratory opened today.
`

func TestParseDocumentReadsBilingualFrontmatter(t *testing.T) {
	doc, err := markdown.ParseDocument("news/new-laboratory.md", []byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Slug != "new-laboratory" {
		t.Fatalf("unexpected slug %q", doc.Slug)
	}
	if got := doc.Title.Lookup(locale.Arabic, ""); got != "افتتاح مختبر جديد" {
		t.Fatalf("unexpected ar title %q", got)
	}
	if doc.Draft {
		t.Fatal("document is not a draft")
	}
	if doc.Body == "" || doc.Body[0] == '-' {
		t.Fatalf("body must exclude frontmatter, got %q", doc.Body)
	}
}

func TestParseDocumentSlugFallsBackToFilename(t *testing.T) {
	source := "---\ntitle: Untitled Slug\n---\nbody\n"
	doc, err := markdown.ParseDocument("news/2026-orientation.md", []byte(source))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Slug != "2026-orientation" {
		t.Fatalf("unexpected slug %q", doc.Slug)
	}
}

func TestParseDocumentRequiresTitle(t *testing.T) {
	_, err := markdown.ParseDocument("news/untitled.md", []byte("---\nauthor: x\n---\nbody\n"))
	if !errors.Is(err, markdown.ErrTitleMissing) {
		t.Fatalf("expected ErrTitleMissing, got %v", err)
	}
}

func TestImportDirUpsertsArticles(t *testing.T) {
	fsys := fstest.MapFS{
		"news/new-laboratory.md": &fstest.MapFile{Data: []byte(sampleDoc)},
		"news/draft-note.md": &fstest.MapFile{Data: []byte(
			"---\ntitle: Draft Note\ndraft: true\n---\nnot ready\n",
		)},
		"news/readme.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	svc := catalog.NewService(catalog.NewMemoryStores())
	importer := markdown.NewImporter(svc)
	ctx := context.Background()

	result, err := importer.ImportDir(ctx, fsys, "news")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 {
		t.Fatalf("unexpected result %+v", result)
	}

	article, err := svc.GetArticleBySlug(ctx, "new-laboratory")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if article.PublishedAt == nil || !article.PublishedAt.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected publish time %v", article.PublishedAt)
	}
	if article.Author != "Press Office" {
		t.Fatalf("unexpected author %q", article.Author)
	}

	draft, err := svc.GetArticleBySlug(ctx, "draft-note")
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	if draft.PublishedAt != nil {
		t.Fatal("drafts must import unpublished")
	}

	// A second run updates in place instead of duplicating.
	if _, err := importer.ImportDir(ctx, fsys, "news"); err != nil {
		t.Fatalf("reimport: %v", err)
	}
	all, err := svc.ListArticles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 articles after reimport, got %d", len(all))
	}
}
