package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	dir := t.TempDir()
	return NewResolver(dir, "es"), dir
}

func TestGetLocaleFallback(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "gracia.mdx"), `---
title: La gracia
date: 2024-03-01
---
Texto en español.
`)
	writeFile(t, filepath.Join(dir, "articles", "gracia.pt.mdx"), `---
title: A graça
date: 2024-03-01
---
Texto em português.
`)

	pt := r.Get(TypeArticle, "gracia", "pt")
	require.NotNil(t, pt)
	require.Equal(t, "pt", pt.Locale)
	require.Equal(t, "A graça", pt.Title)

	es := r.Get(TypeArticle, "gracia", "es")
	require.NotNil(t, es)
	require.Equal(t, "es", es.Locale)
	require.Equal(t, "La gracia", es.Title)
}

func TestGetFallsBackToDefaultLocaleFile(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "fe.mdx"), `---
title: La fe
date: 2024-01-15
---
Solo existe en español.
`)

	item := r.Get(TypeArticle, "fe", "pt")
	require.NotNil(t, item)
	// The served locale reports the file that was actually read.
	require.Equal(t, "es", item.Locale)
	require.Equal(t, "La fe", item.Title)
}

func TestGetMissingSlugReturnsNil(t *testing.T) {
	r, _ := newTestResolver(t)
	require.Nil(t, r.Get(TypeArticle, "no-existe", "es"))
}

func TestGetMalformedFrontMatterReturnsNil(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "roto.mdx"), `---
title: [unterminated
date 2024-01-01
---
body
`)

	require.Nil(t, r.Get(TypeArticle, "roto", "es"))
}

func TestGetMissingFieldsDefaultFilled(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "minimo.mdx"), `---
tags:
  - esperanza
---
Cuerpo sin título ni fecha.
`)

	item := r.Get(TypeArticle, "minimo", "es")
	require.NotNil(t, item)
	require.Empty(t, item.Title)
	require.True(t, item.Date.IsZero())
	require.Equal(t, []string{"esperanza"}, item.Tags)
}

func TestListSortsNewestFirstAndSkipsBroken(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "viejo.mdx"), `---
title: Viejo
date: 2023-01-01
---
`)
	writeFile(t, filepath.Join(dir, "articles", "nuevo.mdx"), `---
title: Nuevo
date: 2025-06-01
---
`)
	writeFile(t, filepath.Join(dir, "articles", "medio.mdx"), `---
title: Medio
date: 2024-06-01
---
`)
	writeFile(t, filepath.Join(dir, "articles", "roto.mdx"), `---
title: {{{
---
`)

	items := r.List(TypeArticle, "es")
	require.Len(t, items, 3)
	require.Equal(t, "Nuevo", items[0].Title)
	require.Equal(t, "Medio", items[1].Title)
	require.Equal(t, "Viejo", items[2].Title)
}

func TestListDoesNotDuplicateLocalizedVariants(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "uno.mdx"), `---
title: Uno
date: 2024-01-01
---
`)
	writeFile(t, filepath.Join(dir, "articles", "uno.pt.mdx"), `---
title: Um
date: 2024-01-01
---
`)

	es := r.List(TypeArticle, "es")
	require.Len(t, es, 1)
	require.Equal(t, "Uno", es[0].Title)

	pt := r.List(TypeArticle, "pt")
	require.Len(t, pt, 1)
	require.Equal(t, "Um", pt[0].Title)
	require.Equal(t, "pt", pt[0].Locale)
}

func TestListEmptyDirectory(t *testing.T) {
	r, _ := newTestResolver(t)
	require.Empty(t, r.List(TypeVideo, "es"))
}

func TestListByTagIgnoresCaseAndAccents(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "a.mdx"), `---
title: A
date: 2024-01-01
tags:
  - Apologética
---
`)
	writeFile(t, filepath.Join(dir, "articles", "b.mdx"), `---
title: B
date: 2024-01-02
tags:
  - oración
---
`)

	matched := r.ListByTag(TypeArticle, "APOLOGETICA", "es")
	require.Len(t, matched, 1)
	require.Equal(t, "A", matched[0].Title)

	// Exact match after normalization, no substring matching.
	require.Empty(t, r.ListByTag(TypeArticle, "apolog", "es"))
}

func TestListStudyLessonsOrderAscending(t *testing.T) {
	r, dir := newTestResolver(t)
	study := filepath.Join(dir, StudiesDir, "fundamentos")

	writeFile(t, filepath.Join(study, "tercera.mdx"), `---
title: Tercera
order: 3
---
`)
	writeFile(t, filepath.Join(study, "primera.mdx"), `---
title: Primera
order: 1
---
`)
	writeFile(t, filepath.Join(study, "sin-orden.mdx"), `---
title: Sin orden
order: tres
---
`)

	lessons := r.ListStudyLessons("fundamentos", "es")
	require.Len(t, lessons, 3)
	// Invalid order coerces to 0 and sorts first.
	require.Equal(t, "Sin orden", lessons[0].Title)
	require.Equal(t, 0, lessons[0].Order)
	require.Equal(t, "Primera", lessons[1].Title)
	require.Equal(t, "Tercera", lessons[2].Title)
}

func TestListStudyLessonsPerFileFallback(t *testing.T) {
	r, dir := newTestResolver(t)
	study := filepath.Join(dir, StudiesDir, "fundamentos")

	writeFile(t, filepath.Join(study, "uno.mdx"), `---
title: Uno
order: 1
---
`)
	writeFile(t, filepath.Join(study, "uno.pt.mdx"), `---
title: Um
order: 1
---
`)
	writeFile(t, filepath.Join(study, "dos.mdx"), `---
title: Dos
order: 2
---
`)

	lessons := r.ListStudyLessons("fundamentos", "pt")
	require.Len(t, lessons, 2)
	require.Equal(t, "Um", lessons[0].Title)
	require.Equal(t, "pt", lessons[0].Locale)
	// No pt variant exists, so the default-locale file is served.
	require.Equal(t, "Dos", lessons[1].Title)
	require.Equal(t, "es", lessons[1].Locale)
}

func TestGetStudyMetadataLocaleFallbackAndDefaults(t *testing.T) {
	r, dir := newTestResolver(t)
	study := filepath.Join(dir, StudiesDir, "fundamentos")

	writeFile(t, filepath.Join(study, "index.json"), `{"title": "Fundamentos", "description": "Curso base"}`)

	meta := r.GetStudyMetadata("fundamentos", "pt")
	require.NotNil(t, meta)
	require.Equal(t, "es", meta.Locale)
	require.Equal(t, "Fundamentos", meta.Title)
	// Missing slug defaults to the study directory name.
	require.Equal(t, "fundamentos", meta.Slug)

	writeFile(t, filepath.Join(study, "index.pt.json"), `{"title": "Fundamentos PT", "slug": "fundamentos", "description": "Curso"}`)

	meta = r.GetStudyMetadata("fundamentos", "pt")
	require.NotNil(t, meta)
	require.Equal(t, "pt", meta.Locale)
	require.Equal(t, "Fundamentos PT", meta.Title)
}

func TestGetStudyMetadataMissingStudy(t *testing.T) {
	r, _ := newTestResolver(t)
	require.Nil(t, r.GetStudyMetadata("no-existe", "es"))
}

func TestSplitFrontMatterVariants(t *testing.T) {
	header, body := splitFrontMatter([]byte("---\ntitle: X\n---\nbody\n"))
	require.Equal(t, "title: X", string(header))
	require.Equal(t, "body\n", string(body))

	// CRLF line endings
	header, body = splitFrontMatter([]byte("---\r\ntitle: X\r\n---\r\nbody"))
	require.Contains(t, string(header), "title: X")
	require.Equal(t, "body", string(body))

	// No front matter block: everything is body.
	header, body = splitFrontMatter([]byte("just markdown\n"))
	require.Nil(t, header)
	require.Equal(t, "just markdown\n", string(body))

	// A UTF-8 BOM before the opening delimiter is tolerated.
	header, body = splitFrontMatter([]byte("\uFEFF---\ntitle: X\n---\nbody\n"))
	require.Equal(t, "title: X", string(header))
	require.Equal(t, "body\n", string(body))
}

func TestGetToleratesByteOrderMark(t *testing.T) {
	r, dir := newTestResolver(t)

	writeFile(t, filepath.Join(dir, "articles", "con-bom.mdx"), "\uFEFF---\ntitle: Con BOM\ndate: 2026-01-05\n---\ncuerpo\n")

	item := r.Get(TypeArticle, "con-bom", "es")
	require.NotNil(t, item)
	require.Equal(t, "Con BOM", item.Title)
	require.Equal(t, "cuerpo\n", item.Body)
}
