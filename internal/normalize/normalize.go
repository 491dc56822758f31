// Package normalize turns loosely typed ingestion payloads into JobPosting
// candidates ready for the store.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/example/job-board/internal/errors"
	"github.com/example/job-board/internal/models"
)

const msgRequired = "title and description are required"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Posting validates and coerces payload. Only a missing or blank title or
// description is an error; every other field degrades to "no value".
func Posting(payload map[string]any) (*models.JobPosting, error) {
	title := requiredText(payload["title"])
	description := requiredText(payload["description"])
	if title == "" || description == "" {
		return nil, apperrors.Validation(msgRequired, nil)
	}

	p := &models.JobPosting{
		Title:       title,
		Description: description,
		CompanyName: optionalText(payload["company_name"]),
		CompanyLogo: optionalText(payload["company_logo"]),
		JobReqID:    optionalText(payload["job_req_id"]),
		ApplyLink:   optionalText(payload["apply_link"]),
		Location:    optionalText(payload["location"]),
		Experience:  optionalText(payload["experience"]),
		Skills:      models.ParseSkills(payload["skills"]),
		RemoteType:  optionalText(payload["remote_type"]),
		TimeType:    optionalText(payload["time_type"]),
		PostedDate:  optionalDate(payload["posted_date"]),
	}
	if p.JobReqID != nil {
		id := strings.TrimSpace(*p.JobReqID)
		p.JobReqID = &id
	}
	return p, nil
}

func requiredText(v any) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func optionalText(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	return &s
}

func optionalDate(v any) *models.Date {
	switch t := v.(type) {
	case time.Time:
		return models.NewDate(t)
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return models.NewDate(parsed)
			}
		}
	}
	return nil
}
