package journal

import (
	"path/filepath"
	"strings"
	"time"
)

// DateLayout is the ISO date used in headings and file names.
const DateLayout = "2006-01-02"

// Entry is one generated journal day.
type Entry struct {
	Date       time.Time
	Activities []string
}

// Render produces the markdown body of the entry: a level-1 date heading,
// a blank line, one bullet per activity and a trailing newline.
func (e Entry) Render() string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(e.Date.Format(DateLayout))
	b.WriteString("\n\n")
	for _, a := range e.Activities {
		b.WriteString("* ")
		b.WriteString(a)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// YearDir is the directory, relative to the journal root, that holds the entry.
func (e Entry) YearDir() string {
	return e.Date.Format("2006")
}

// RelPath is the entry file path relative to the journal root.
func (e Entry) RelPath() string {
	return filepath.Join(e.YearDir(), e.Date.Format(DateLayout)+".md")
}
