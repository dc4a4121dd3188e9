package content

import "time"

// Type identifies a content collection on disk. The value doubles as the
// directory name under the content root.
type Type string

const (
	TypeArticle   Type = "articles"
	TypeVideo     Type = "videos"
	TypeTestimony Type = "testimonies"

	// TypeStudyLesson is not a top-level collection; lessons live under
	// studies/{study}/ and are enumerated per study.
	TypeStudyLesson Type = "study-lessons"

	// StudiesDir holds one subdirectory per Bible study; lesson files and
	// the study's index.json live inside it.
	StudiesDir = "studies"

	// Ext is the canonical content file extension.
	Ext = ".mdx"
)

// ValidTypes lists the collections the resolver will enumerate.
var ValidTypes = []Type{TypeArticle, TypeVideo, TypeTestimony}

// ParseType maps a URL segment to a content Type.
func ParseType(s string) (Type, bool) {
	for _, t := range ValidTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Item is one parsed content file. (Type, Slug) identify the logical
// document; Locale records the locale of the file actually served, so a
// caller can tell when the default-locale fallback kicked in.
type Item struct {
	Type   Type   `json:"type"`
	Slug   string `json:"slug"`
	Locale string `json:"locale"`

	Title      string    `json:"title"`
	Date       time.Time `json:"date"`
	CoverImage string    `json:"cover_image,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Author     string    `json:"author,omitempty"`
	Duration   string    `json:"duration,omitempty"`
	VideoURL   string    `json:"video_url,omitempty"`

	Body string `json:"body"`
}

// StudyLesson is a content item inside a study directory, ordered by the
// explicit order front-matter field (0 when missing or invalid).
type StudyLesson struct {
	Item
	Study string `json:"study"`
	Order int    `json:"order"`
}

// StudyMetadata describes a study collection, read from the study's
// index.json (with the same locale fallback as lesson files). Required
// fields are title, slug and description; violations are logged and
// default-filled, never rejected.
type StudyMetadata struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Level         string   `json:"level,omitempty"`
	LessonCount   int      `json:"lessonCount,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Order         int      `json:"order,omitempty"`

	Locale string `json:"locale"`
}
