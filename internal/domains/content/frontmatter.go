package content

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header block at the top of an .mdx file.
// Order is decoded loosely because authors have written "order: 03",
// "order: three" and plain integers; anything unparseable counts as 0.
type frontMatter struct {
	Title    string      `yaml:"title"`
	Date     string      `yaml:"date"`
	Cover    string      `yaml:"cover"`
	Tags     []string    `yaml:"tags"`
	Author   string      `yaml:"author"`
	Duration string      `yaml:"duration"`
	VideoURL string      `yaml:"videoUrl"`
	Order    interface{} `yaml:"order"`
}

var frontMatterDelim = []byte("---")

// splitFrontMatter separates the YAML header from the markdown body.
// A file without a leading --- block is all body.
func splitFrontMatter(raw []byte) (header, body []byte) {
	trimmed := bytes.TrimLeft(raw, "\uFEFF") // tolerate a BOM
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return nil, raw
	}

	rest := trimmed[len(frontMatterDelim):]
	// the opening delimiter must end its line
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		return nil, raw
	}

	for _, marker := range []string{"\n---\n", "\n---\r\n"} {
		if idx := bytes.Index(rest, []byte(marker)); idx >= 0 {
			return rest[:idx], rest[idx+len(marker):]
		}
	}
	// header that ends the file with a closing delimiter and no trailing newline
	if idx := bytes.Index(rest, []byte("\n---")); idx >= 0 && idx+4 == len(rest) {
		return rest[:idx], nil
	}

	return nil, raw
}

// parseFrontMatter decodes the header block. A YAML error is returned to
// the caller, which logs it and skips the single item.
func parseFrontMatter(header []byte) (*frontMatter, error) {
	fm := &frontMatter{}
	if len(header) == 0 {
		return fm, nil
	}
	if err := yaml.Unmarshal(header, fm); err != nil {
		return nil, fmt.Errorf("front matter yaml: %w", err)
	}
	return fm, nil
}

// orderValue coerces the loosely-typed order field to an int, 0 on
// anything missing or invalid.
func (fm *frontMatter) orderValue() int {
	switch v := fm.Order.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// dateValue parses the declared date. Unparseable dates come back as the
// zero time, which sorts last in the newest-first listing.
func (fm *frontMatter) dateValue() (time.Time, bool) {
	raw := strings.TrimSpace(fm.Date)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
