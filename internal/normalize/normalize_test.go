package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	apperrors "github.com/example/job-board/internal/errors"
	"github.com/example/job-board/internal/models"
)

func TestPostingRequiresTitleAndDescription(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"nil payload", nil},
		{"empty title", map[string]any{"title": "", "description": "d"}},
		{"blank title", map[string]any{"title": "   ", "description": "d"}},
		{"missing description", map[string]any{"title": "t"}},
		{"non-string title", map[string]any{"title": 12.0, "description": "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Posting(tt.payload)
			if p != nil {
				t.Fatalf("expected no candidate, got %+v", p)
			}
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestPostingOptionalFields(t *testing.T) {
	p, err := Posting(map[string]any{
		"title":        "Backend Engineer",
		"description":  "Build APIs",
		"company_name": "Acme",
		"company_logo": "",
		"job_req_id":   " REQ-1 ",
		"location":     nil,
		"experience":   3.0,
		"remote_type":  true,
		"skills":       "go, postgres",
	})
	if err != nil {
		t.Fatalf("Posting: %v", err)
	}

	if p.CompanyName == nil || *p.CompanyName != "Acme" {
		t.Errorf("CompanyName = %v", p.CompanyName)
	}
	if p.CompanyLogo != nil {
		t.Errorf("empty company_logo should be no value, got %q", *p.CompanyLogo)
	}
	if p.JobReqID == nil || *p.JobReqID != "REQ-1" {
		t.Errorf("JobReqID = %v", p.JobReqID)
	}
	if p.Location != nil || p.ApplyLink != nil || p.TimeType != nil || p.PostedDate != nil {
		t.Errorf("absent fields should be no value: %+v", p)
	}
	if p.Experience == nil || *p.Experience != "3" {
		t.Errorf("Experience = %v", p.Experience)
	}
	if p.RemoteType == nil || *p.RemoteType != "true" {
		t.Errorf("RemoteType = %v", p.RemoteType)
	}
	if !reflect.DeepEqual(p.Skills, models.Skills{"go", "postgres"}) {
		t.Errorf("Skills = %#v", p.Skills)
	}
	if p.ID != 0 || !p.CreatedAt.IsZero() {
		t.Errorf("store-assigned fields must stay unset: %+v", p)
	}
}

func TestPostingSkillsNeverFail(t *testing.T) {
	for _, skills := range []any{nil, 5.0, map[string]any{}, `{"a":1}`, []any{nil, 1.0}} {
		p, err := Posting(map[string]any{"title": "t", "description": "d", "skills": skills})
		if err != nil {
			t.Fatalf("skills %#v: %v", skills, err)
		}
		if p.Skills == nil {
			t.Fatalf("skills %#v: got nil sequence", skills)
		}
	}
}

func TestPostingDecodedFromJSON(t *testing.T) {
	var payload map[string]any
	body := `{"title":"t","description":"d","job_req_id":1234,"skills":["a","",null," b "],"posted_date":"2024-05-01"}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatal(err)
	}

	p, err := Posting(payload)
	if err != nil {
		t.Fatalf("Posting: %v", err)
	}
	if *p.JobReqID != "1234" {
		t.Errorf("JobReqID = %q", *p.JobReqID)
	}
	if !reflect.DeepEqual(p.Skills, models.Skills{"a", "b"}) {
		t.Errorf("Skills = %#v", p.Skills)
	}
	if p.PostedDate == nil {
		t.Fatal("PostedDate not parsed")
	}
	if got := p.PostedDate.String(); got != "2024-05-01" {
		t.Errorf("PostedDate = %s", got)
	}
}

func TestPostingBadDateIsNoValue(t *testing.T) {
	p, err := Posting(map[string]any{"title": "t", "description": "d", "posted_date": "last tuesday"})
	if err != nil {
		t.Fatalf("Posting: %v", err)
	}
	if p.PostedDate != nil {
		t.Fatalf("PostedDate = %v, want nil", p.PostedDate)
	}
}
