package parse

import "strings"

// Sections parses a labeled-section reply of the kind the reasoning and
// research capabilities produce:
//
//	SUMMARY: one or more lines of text
//	FINDINGS:
//	- bullet item
//	- bullet item
//	SOURCES:
//	- https://example.com
//
// The parser is a small state machine: a line starting with a recognized
// "LABEL:" opens that section; bullet lines ("-", "•", "*") become items of
// the open section; any other non-empty line is appended to the open
// section's text. Text before the first label is discarded.
type Sections struct {
	order []string
	text  map[string]string
	items map[string][]string
}

// ParseSections parses text against the given ordered label set. Labels are
// matched case-sensitively at the start of a line, with or without leading
// markdown emphasis characters.
func ParseSections(text string, labels []string) *Sections {
	s := &Sections{
		order: labels,
		text:  make(map[string]string, len(labels)),
		items: make(map[string][]string, len(labels)),
	}

	current := ""
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if label, rest, ok := s.matchLabel(line); ok {
			current = label
			if rest != "" {
				s.appendText(current, rest)
			}
			continue
		}

		if current == "" {
			continue
		}

		if item, ok := bulletItem(line); ok {
			if item != "" {
				s.items[current] = append(s.items[current], item)
			}
			continue
		}

		s.appendText(current, line)
	}

	return s
}

// Text returns the accumulated free text of a section.
func (s *Sections) Text(label string) string {
	return s.text[label]
}

// Items returns the bullet items of a section.
func (s *Sections) Items(label string) []string {
	return s.items[label]
}

func (s *Sections) matchLabel(line string) (label, rest string, ok bool) {
	// Tolerate markdown emphasis around the label ("**SUMMARY:**")
	stripped := strings.TrimLeft(line, "*#_ ")
	for _, l := range s.order {
		prefix := l + ":"
		if strings.HasPrefix(stripped, prefix) {
			rest = strings.TrimSpace(strings.TrimPrefix(stripped, prefix))
			rest = strings.TrimSpace(strings.TrimLeft(rest, "*_"))
			return l, rest, true
		}
	}
	return "", "", false
}

func (s *Sections) appendText(label, text string) {
	if s.text[label] == "" {
		s.text[label] = text
		return
	}
	s.text[label] += " " + text
}

func bulletItem(line string) (string, bool) {
	for _, marker := range []string{"-", "•", "*"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimLeft(line, "-•* ")), true
		}
	}
	return "", false
}
