package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Skills is an ordered list of non-blank, trimmed skill names. It is stored as
// a JSON array (jsonb on PostgreSQL, text elsewhere) and always encodes to a
// JSON array, never null.
type Skills []string

// ParseSkills normalizes a loosely typed skills value. Accepted shapes are a
// sequence, a string holding a JSON array, or a comma separated string. Any
// other shape yields an empty list.
func ParseSkills(v any) Skills {
	switch t := v.(type) {
	case Skills:
		return cleanSkills(toAny([]string(t)))
	case []string:
		return cleanSkills(toAny(t))
	case []any:
		return cleanSkills(t)
	case []byte:
		return ParseSkills(string(t))
	case string:
		s := strings.TrimSpace(t)
		if strings.HasPrefix(s, "[") {
			var arr []any
			if err := json.UnmarshalFromString(s, &arr); err == nil {
				return cleanSkills(arr)
			}
		}
		parts := strings.Split(t, ",")
		return cleanSkills(toAny(parts))
	default:
		return Skills{}
	}
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// cleanSkills drops non-strings and blanks and trims the rest. Order and
// duplicates are preserved.
func cleanSkills(in []any) Skills {
	out := make(Skills, 0, len(in))
	for _, v := range in {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (s Skills) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	// string, not []byte: lib/pq would send []byte as bytea.
	return string(b), nil
}

func (s *Skills) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = Skills{}
	case []byte:
		*s = ParseSkills(string(v))
	case string:
		*s = ParseSkills(v)
	default:
		return fmt.Errorf("skills: unsupported column type %T", src)
	}
	return nil
}

func (Skills) GormDataType() string {
	return "skills"
}

func (Skills) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

func (s Skills) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *Skills) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = ParseSkills(v)
	return nil
}
