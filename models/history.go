package models

import "time"

// HistoryEntryType classifies what kind of catalog node a history entry
// refers to. A topic and a file sharing an ID string are distinct entries.
type HistoryEntryType string

const (
	HistorySubject HistoryEntryType = "subject"
	HistoryTopic   HistoryEntryType = "topic"
	HistoryFile    HistoryEntryType = "file"
)

// HistoryEntry is a deduplicated, visit-counted record of a previously
// viewed subject, topic, or paper file. Identity is the pair (ID, Type):
// a repeat visit increments VisitCount and refreshes LastVisited in place
// instead of creating a second entry.
type HistoryEntry struct {
	// Type tells whether ID names a subject, a topic, or a paper file.
	Type HistoryEntryType `json:"type"`

	// ID is the catalog identifier of the visited node.
	ID string `json:"id"`

	// Name is the display title captured at visit time.
	Name string `json:"name"`

	// Icon is the subject glyph, when the entry is a subject.
	Icon string `json:"icon,omitempty"`

	// SubjectName is the owning subject's title for topic and file entries.
	SubjectName string `json:"subjectName,omitempty"`

	// TopicName is the owning topic's title for file entries.
	TopicName string `json:"topicName,omitempty"`

	// Papers is the paper count captured for topic entries.
	Papers int `json:"papers,omitempty"`

	// VisitCount is how many times this node has been visited, at least 1.
	VisitCount int `json:"visitCount"`

	// LastVisited is the time of the most recent visit.
	LastVisited time.Time `json:"lastVisited"`
}

// SameIdentity reports whether other refers to the same catalog node.
func (e HistoryEntry) SameIdentity(other HistoryEntry) bool {
	return e.ID == other.ID && e.Type == other.Type
}

// HistoryCap is the maximum number of retained history entries. Insertions
// past the cap drop the oldest entries; nothing expires by age.
const HistoryCap = 50
