package models

import (
	stdjson "encoding/json"
	"reflect"
	"testing"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Skills
	}{
		{"comma string", "a, b ,  c", Skills{"a", "b", "c"}},
		{"mixed sequence", []any{"a", "", nil, " b "}, Skills{"a", "b"}},
		{"not json", "not json, still text", Skills{"not json", "still text"}},
		{"json array string", `["go", " sql ", 3, ""]`, Skills{"go", "sql"}},
		{"broken json array", `[go, sql`, Skills{"[go", "sql"}},
		{"keeps duplicates and order", []string{"b", "a", "b"}, Skills{"b", "a", "b"}},
		{"single word", "Go", Skills{"Go"}},
		{"blank string", "   ", Skills{}},
		{"number", 42.0, Skills{}},
		{"object", map[string]any{"a": 1}, Skills{}},
		{"nil", nil, Skills{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSkills(tt.in)
			if got == nil {
				t.Fatal("ParseSkills returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseSkills(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSkillsColumnCodec(t *testing.T) {
	v, err := Skills{"go", "sql"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != `["go","sql"]` {
		t.Fatalf("Value = %#v", v)
	}

	var s Skills
	if err := s.Scan([]byte(`["go","sql"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(s, Skills{"go", "sql"}) {
		t.Fatalf("Scan = %#v", s)
	}

	// Rows written by older producers may hold a raw comma separated string.
	if err := s.Scan("go, sql"); err != nil {
		t.Fatalf("Scan legacy: %v", err)
	}
	if !reflect.DeepEqual(s, Skills{"go", "sql"}) {
		t.Fatalf("Scan legacy = %#v", s)
	}

	if err := s.Scan(nil); err != nil || s == nil || len(s) != 0 {
		t.Fatalf("Scan(nil) = %#v, %v", s, err)
	}

	if err := s.Scan(12); err == nil {
		t.Fatal("expected error for unsupported column type")
	}
}

func TestSkillsJSONNeverNull(t *testing.T) {
	var s Skills
	b, err := stdjson.Marshal(struct {
		Skills Skills `json:"skills"`
	}{s})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"skills":[]}` {
		t.Fatalf("Marshal = %s", b)
	}

	if err := stdjson.Unmarshal([]byte(`"a,b"`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(s, Skills{"a", "b"}) {
		t.Fatalf("Unmarshal = %#v", s)
	}
}
