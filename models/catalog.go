package models

// Subject is a top-level catalog node: one examinable discipline with its
// topic tree. Subjects are keyed by a short stable identifier ("math",
// "physics") rather than display name.
type Subject struct {
	// Key is the stable catalog identifier of the subject.
	Key string `json:"key"`

	// Name is the human-readable subject title.
	Name string `json:"name"`

	// Icon is a short decorative glyph shown next to the name.
	Icon string `json:"icon,omitempty"`

	// Topics is the ordered list of topics under this subject.
	Topics []Topic `json:"topics"`
}

// Topic is a mid-level catalog node grouping the past papers of one
// syllabus area within a subject.
type Topic struct {
	// ID is the stable catalog identifier of the topic.
	ID string `json:"id"`

	// Name is the human-readable topic title.
	Name string `json:"name"`

	// Papers is the ordered list of past papers under this topic.
	Papers []Paper `json:"papers"`
}

// Paper is a single past examination paper file.
type Paper struct {
	// ID is the stable catalog identifier of the paper.
	ID string `json:"id"`

	// Name is the display title, e.g. "2023 June Paper 1".
	Name string `json:"name"`

	// Year is the examination year.
	Year int `json:"year,omitempty"`

	// FileURL points at the remote document; preview shows metadata only.
	FileURL string `json:"fileUrl,omitempty"`

	// SizeBytes is the document size when known, zero otherwise.
	SizeBytes int64 `json:"sizeBytes,omitempty"`
}

// SearchResult is one hit of the paper search: the paper itself plus the
// catalog context it was found under.
type SearchResult struct {
	Paper `json:"paper"`

	// SubjectKey and SubjectName identify the owning subject.
	SubjectKey  string `json:"subjectKey"`
	SubjectName string `json:"subjectName"`

	// TopicID and TopicName identify the owning topic.
	TopicID   string `json:"topicId"`
	TopicName string `json:"topicName"`
}

// TopicByID returns the subject's topic with the given ID.
func (s Subject) TopicByID(id string) (Topic, bool) {
	for _, t := range s.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}
