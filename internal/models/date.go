package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire form of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date. It is stored through datatypes.Date and rendered
// as YYYY-MM-DD in JSON.
type Date struct {
	datatypes.Date
}

func NewDate(t time.Time) *Date {
	y, m, d := t.Date()
	return &Date{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

func (d Date) Time() time.Time { return time.Time(d.Date) }

func (d Date) String() string { return d.Time().Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts YYYY-MM-DD and RFC3339 timestamps.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{DateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = *NewDate(t)
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}
