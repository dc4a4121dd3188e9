package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"caminodevida-backend/internal/shared/utils"
	"caminodevida-backend/pkg/logger"
)

// Resolver translates (type, slug, locale) triples into parsed content
// items, falling back to the default-locale file when no localized
// variant exists. It holds no cross-call cache: every call re-reads the
// content tree.
type Resolver struct {
	dir           string
	defaultLocale string
}

func NewResolver(dir, defaultLocale string) *Resolver {
	return &Resolver{
		dir:           dir,
		defaultLocale: defaultLocale,
	}
}

// resolvePath applies the locale fallback rule for a single slug inside
// dir. It returns the path of the file to serve, the locale that file
// carries, and false when neither variant exists.
func (r *Resolver) resolvePath(dir, slug, locale string) (string, string, bool) {
	if locale != "" && locale != r.defaultLocale {
		localized := filepath.Join(dir, slug+"."+locale+Ext)
		if fileExists(localized) {
			return localized, locale, true
		}
	}
	base := filepath.Join(dir, slug+Ext)
	if fileExists(base) {
		return base, r.defaultLocale, true
	}
	return "", "", false
}

// Get returns the item for (contentType, slug, locale), or nil when
// neither a localized nor a base file exists. Read and parse failures are
// logged and degrade to nil rather than propagating.
func (r *Resolver) Get(contentType Type, slug, locale string) *Item {
	dir := filepath.Join(r.dir, string(contentType))
	path, servedLocale, ok := r.resolvePath(dir, slug, locale)
	if !ok {
		return nil
	}
	item, err := r.loadItem(path, contentType, slug, servedLocale)
	if err != nil {
		logger.Error("content: failed to load item "+path, err)
		return nil
	}
	return item
}

// List enumerates every base-locale file of the given type, serving the
// localized variant where one exists, sorted newest-first by declared
// date. A file that fails to parse is skipped, never aborts the listing.
func (r *Resolver) List(contentType Type, locale string) []Item {
	dir := filepath.Join(r.dir, string(contentType))
	items := make([]Item, 0)

	for _, slug := range r.baseSlugs(dir) {
		if item := r.Get(contentType, slug, locale); item != nil {
			items = append(items, *item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items
}

// ListByTag filters List with accent- and case-insensitive tag equality.
func (r *Resolver) ListByTag(contentType Type, tag, locale string) []Item {
	all := r.List(contentType, locale)
	matched := make([]Item, 0)
	for _, item := range all {
		for _, t := range item.Tags {
			if utils.TagsMatch(t, tag) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// ListStudyLessons applies the per-file locale fallback inside a study's
// directory and sorts ascending by the explicit order field.
func (r *Resolver) ListStudyLessons(study, locale string) []StudyLesson {
	dir := filepath.Join(r.dir, StudiesDir, study)
	lessons := make([]StudyLesson, 0)

	for _, slug := range r.baseSlugs(dir) {
		path, servedLocale, ok := r.resolvePath(dir, slug, locale)
		if !ok {
			continue
		}
		lesson, err := r.loadLesson(path, study, slug, servedLocale)
		if err != nil {
			logger.Error("content: failed to load lesson "+path, err)
			continue
		}
		lessons = append(lessons, *lesson)
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Order < lessons[j].Order
	})
	return lessons
}

// GetStudyMetadata reads the study's index.json (or index.{locale}.json)
// and default-fills missing required fields instead of failing.
func (r *Resolver) GetStudyMetadata(study, locale string) *StudyMetadata {
	dir := filepath.Join(r.dir, StudiesDir, study)

	path := filepath.Join(dir, "index.json")
	servedLocale := r.defaultLocale
	if locale != "" && locale != r.defaultLocale {
		localized := filepath.Join(dir, "index."+locale+".json")
		if fileExists(localized) {
			path = localized
			servedLocale = locale
		}
	}
	if !fileExists(path) {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("content: failed to read study metadata "+path, err)
		return nil
	}

	meta := &StudyMetadata{}
	if err := json.Unmarshal(raw, meta); err != nil {
		logger.Error("content: malformed study metadata "+path, err)
		return nil
	}
	meta.Locale = servedLocale

	// Required fields are permissive: log and fill, never reject.
	if meta.Title == "" {
		logger.Warn("content: study metadata missing title", map[string]interface{}{"study": study, "path": path})
	}
	if meta.Slug == "" {
		logger.Warn("content: study metadata missing slug", map[string]interface{}{"study": study, "path": path})
		meta.Slug = study
	}
	if meta.Description == "" {
		logger.Warn("content: study metadata missing description", map[string]interface{}{"study": study, "path": path})
	}

	return meta
}

// baseSlugs lists the default-locale slugs in dir: canonical extension,
// excluding locale-suffixed variants (stem contains a dot).
func (r *Resolver) baseSlugs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error("content: failed to read directory "+dir, err)
		}
		return nil
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		stem := strings.TrimSuffix(name, Ext)
		if strings.Contains(stem, ".") {
			continue // locale-suffixed variant, enumerated via its base slug
		}
		slugs = append(slugs, stem)
	}
	return slugs
}

func (r *Resolver) loadItem(path string, contentType Type, slug, locale string) (*Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	header, body := splitFrontMatter(raw)
	fm, err := parseFrontMatter(header)
	if err != nil {
		return nil, err
	}

	item := &Item{
		Type:       contentType,
		Slug:       slug,
		Locale:     locale,
		Title:      fm.Title,
		CoverImage: fm.Cover,
		Tags:       fm.Tags,
		Author:     fm.Author,
		Duration:   fm.Duration,
		VideoURL:   fm.VideoURL,
		Body:       string(body),
	}

	if item.Title == "" {
		logger.Warn("content: item missing title", map[string]interface{}{"path": path})
	}
	if date, ok := fm.dateValue(); ok {
		item.Date = date
	} else {
		logger.Warn("content: item missing or invalid date", map[string]interface{}{"path": path})
	}

	return item, nil
}

func (r *Resolver) loadLesson(path, study, slug, locale string) (*StudyLesson, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	header, body := splitFrontMatter(raw)
	fm, err := parseFrontMatter(header)
	if err != nil {
		return nil, err
	}

	lesson := &StudyLesson{
		Item: Item{
			Type:       TypeStudyLesson,
			Slug:       slug,
			Locale:     locale,
			Title:      fm.Title,
			CoverImage: fm.Cover,
			Tags:       fm.Tags,
			Author:     fm.Author,
			Duration:   fm.Duration,
			VideoURL:   fm.VideoURL,
			Body:       string(body),
		},
		Study: study,
		Order: fm.orderValue(),
	}
	if date, ok := fm.dateValue(); ok {
		lesson.Date = date
	}
	return lesson, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
