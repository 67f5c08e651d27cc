package behavior

import "strings"

// Slot is one named position in a section, holding an already-rendered
// fragment or nothing.
type Slot struct {
	Name     string
	Fragment string
}

// Section renders an ordered slot list under a constant header. Fragments
// are appended untouched; slots whose fragment is empty or whitespace
// contribute nothing, not even a delimiter.
type Section struct {
	Title     string
	Delimiter string
}

// NewSection returns a Section with the default newline delimiter.
func NewSection(title string) Section {
	return Section{Title: title, Delimiter: "\n"}
}

// Render concatenates the header and every non-empty fragment in slot
// order. A section whose slots are all empty renders to the empty string
// so optional sections leave no stray header behind.
func (s Section) Render(slots ...Slot) string {
	delim := s.Delimiter
	if delim == "" {
		delim = "\n"
	}
	parts := make([]string, 0, len(slots)+1)
	for _, slot := range slots {
		if strings.TrimSpace(slot.Fragment) == "" {
			continue
		}
		parts = append(parts, slot.Fragment)
	}
	if len(parts) == 0 {
		return ""
	}
	if s.Title != "" {
		parts = append([]string{"--- " + s.Title + " ---"}, parts...)
	}
	return strings.Join(parts, delim)
}
