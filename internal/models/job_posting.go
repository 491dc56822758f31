package models

import "time"

// JobPosting is the single persisted entity. Optional columns are pointers so
// that "no value" stays distinguishable from an empty string all the way down
// to the upsert.
type JobPosting struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"type:text;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	CompanyName *string         `gorm:"type:text" json:"company_name"`
	CompanyLogo *string         `gorm:"type:text" json:"company_logo"`
	JobReqID    *string         `gorm:"type:text;uniqueIndex:idx_posts_job_req_id" json:"job_req_id"`
	ApplyLink   *string         `gorm:"type:text" json:"apply_link"`
	Location    *string         `gorm:"type:text" json:"location"`
	Experience  *string         `gorm:"type:text" json:"experience"`
	Skills      Skills          `gorm:"not null" json:"skills"`
	RemoteType  *string         `gorm:"type:text" json:"remote_type"`
	TimeType    *string         `gorm:"type:text" json:"time_type"`
	PostedDate  *Date           `gorm:"type:date" json:"posted_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;<-:create" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JobPosting) TableName() string { return "posts" }
