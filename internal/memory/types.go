package memory

import "time"

// Section names of a day document, in template order.
const (
	SectionStaffNotes         = "Staff Notes"
	SectionIssuesReported     = "Issues Reported"
	SectionOperationalChanges = "Operational Changes"
	SectionPatternsObserved   = "Patterns Observed"
	SectionAINotes            = "AI Notes"
)

// Sections is the fixed section template of every day document.
var Sections = []string{
	SectionStaffNotes,
	SectionIssuesReported,
	SectionOperationalChanges,
	SectionPatternsObserved,
	SectionAINotes,
}

// Entry is one timestamped line of a section.
type Entry struct {
	Time string // HH:MM
	Text string
}

// Document is raw stored content with the version it was read at.
type Document struct {
	Content string
	Version string
}

// Backup is a saved copy of content taken before an overwrite.
type Backup struct {
	Key     string
	Path    string
	Content string
	TakenAt time.Time
}

// AppendInput appends one entry to a day section.
type AppendInput struct {
	Date    string
	Section string
	Text    string
}

// OverwriteOutput reports where the prior content was backed up.
type OverwriteOutput struct {
	Backup Backup
}
