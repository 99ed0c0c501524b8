package memory

import (
	"fmt"
	"strings"
	"time"
)

// Day is a parsed day document. Lines outside the known entry format are kept
// verbatim so operator edits survive a round trip.
type Day struct {
	Date     string
	Preamble []string
	sections []section
}

type section struct {
	name  string
	lines []string
}

// NewDay returns an empty day with the section template.
func NewDay(date string) *Day {
	d := &Day{Date: date}
	d.ensureTemplate()
	return d
}

// ParseDay parses stored markdown into a Day.
func ParseDay(date, content string) *Day {
	d := &Day{Date: date}
	var cur *section

	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## "):
			d.sections = append(d.sections, section{name: strings.TrimSpace(trimmed[3:])})
			cur = &d.sections[len(d.sections)-1]
		case strings.HasPrefix(trimmed, "# ") && cur == nil:
			// title, regenerated on render
		case trimmed == "":
			// blank lines are layout only
		case cur == nil:
			d.Preamble = append(d.Preamble, line)
		default:
			cur.lines = append(cur.lines, line)
		}
	}

	d.ensureTemplate()
	return d
}

func (d *Day) ensureTemplate() {
	for _, name := range Sections {
		if d.find(name) == nil {
			d.sections = append(d.sections, section{name: name})
		}
	}
}

func (d *Day) find(name string) *section {
	for i := range d.sections {
		if strings.EqualFold(d.sections[i].name, name) {
			return &d.sections[i]
		}
	}
	return nil
}

// Prepend inserts e as the first entry of the named section.
func (d *Day) Prepend(name string, e Entry) {
	s := d.find(name)
	if s == nil {
		d.sections = append(d.sections, section{name: name})
		s = &d.sections[len(d.sections)-1]
	}
	s.lines = append([]string{FormatEntry(e)}, s.lines...)
}

// Entries returns the parsed entries of a section. Lines that are not entries
// are returned with an empty Time.
func (d *Day) Entries(name string) []Entry {
	s := d.find(name)
	if s == nil {
		return nil
	}
	out := make([]Entry, 0, len(s.lines))
	for _, line := range s.lines {
		out = append(out, ParseEntry(line))
	}
	return out
}

// SectionNames returns section names in document order.
func (d *Day) SectionNames() []string {
	names := make([]string, len(d.sections))
	for i, s := range d.sections {
		names[i] = s.name
	}
	return names
}

// Render serializes the day to markdown.
func (d *Day) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Date)
	for _, line := range d.Preamble {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(d.Preamble) > 0 {
		b.WriteString("\n")
	}
	for i, s := range d.sections {
		fmt.Fprintf(&b, "## %s\n", s.name)
		for _, line := range s.lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		if i < len(d.sections)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatEntry renders an entry as "- HH:MM -- text".
func FormatEntry(e Entry) string {
	return fmt.Sprintf("- %s -- %s", e.Time, e.Text)
}

// ParseEntry parses a "- HH:MM -- text" line.
func ParseEntry(line string) Entry {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, "- ")
	if !ok {
		return Entry{Text: trimmed}
	}
	ts, text, ok := strings.Cut(rest, " -- ")
	if !ok {
		return Entry{Text: rest}
	}
	if _, err := time.Parse(TimeLayout, ts); err != nil {
		return Entry{Text: rest}
	}
	return Entry{Time: ts, Text: text}
}

// CanonicalSection resolves a section name case-insensitively.
func CanonicalSection(name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, s := range Sections {
		if strings.EqualFold(s, name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// ValidateDate checks a YYYY-MM-DD key.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}
