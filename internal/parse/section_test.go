package parse

import (
	"reflect"
	"testing"
)

func TestParseSections_Basic(t *testing.T) {
	text := `SUMMARY: The claim is covered by two outlets.
It was reported on the same day.
FINDINGS:
- First finding
- Second finding
SOURCES:
- https://example.com/a
- https://example.com/b
`
	s := ParseSections(text, []string{"SUMMARY", "FINDINGS", "SOURCES"})

	if got := s.Text("SUMMARY"); got != "The claim is covered by two outlets. It was reported on the same day." {
		t.Errorf("unexpected summary: %q", got)
	}
	if got := s.Items("FINDINGS"); !reflect.DeepEqual(got, []string{"First finding", "Second finding"}) {
		t.Errorf("unexpected findings: %v", got)
	}
	if got := s.Items("SOURCES"); len(got) != 2 || got[0] != "https://example.com/a" {
		t.Errorf("unexpected sources: %v", got)
	}
}

func TestParseSections_UnlabeledTextJoinsOpenSection(t *testing.T) {
	text := `SCOPE: district
additional scope detail
FINDINGS:
- one
stray line inside findings
`
	s := ParseSections(text, []string{"SCOPE", "FINDINGS"})

	if got := s.Text("SCOPE"); got != "district additional scope detail" {
		t.Errorf("unexpected scope: %q", got)
	}
	// Stray text inside a bullet section accumulates as section text
	if got := s.Text("FINDINGS"); got != "stray line inside findings" {
		t.Errorf("unexpected findings text: %q", got)
	}
	if got := s.Items("FINDINGS"); len(got) != 1 || got[0] != "one" {
		t.Errorf("unexpected findings items: %v", got)
	}
}

func TestParseSections_MarkdownEmphasisAroundLabels(t *testing.T) {
	text := "**SUMMARY:** covered widely\n**SOURCES:**\n- https://example.com\n"
	s := ParseSections(text, []string{"SUMMARY", "SOURCES"})

	if got := s.Text("SUMMARY"); got != "covered widely" {
		t.Errorf("unexpected summary: %q", got)
	}
	if got := s.Items("SOURCES"); len(got) != 1 {
		t.Errorf("unexpected sources: %v", got)
	}
}

func TestParseSections_TextBeforeFirstLabelDiscarded(t *testing.T) {
	text := "Here is my analysis.\nSUMMARY: fine\n"
	s := ParseSections(text, []string{"SUMMARY"})

	if got := s.Text("SUMMARY"); got != "fine" {
		t.Errorf("unexpected summary: %q", got)
	}
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{
			name:  "plain object",
			in:    `{"a": 1}`,
			want:  `{"a": 1}`,
			found: true,
		},
		{
			name:  "object wrapped in prose",
			in:    "Here you go:\n```json\n{\"a\": {\"b\": 2}}\n```\nDone.",
			want:  `{"a": {"b": 2}}`,
			found: true,
		},
		{
			name:  "braces inside strings ignored",
			in:    `{"text": "a } inside \" quotes {"}`,
			want:  `{"text": "a } inside \" quotes {"}`,
			found: true,
		},
		{
			name:  "no object",
			in:    "no json here",
			found: false,
		},
		{
			name:  "unbalanced",
			in:    `{"a": 1`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FirstJSONObject(tt.in)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
