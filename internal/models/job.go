package models

type Job struct {
	BaseModel
	RecruiterID  string    `gorm:"type:uuid;not null;index" json:"recruiter_id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	Salary       *float64  `json:"salary,omitempty"`
	Status       JobStatus `gorm:"type:varchar(20);default:'open'" json:"status"`

	Recruiter    *User         `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

// IsOpen reports whether the job still accepts applications.
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}

type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;index" json:"job_id"`
	ApplicantID *string           `gorm:"type:uuid;index" json:"applicant_id,omitempty"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'submitted'" json:"status"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}

// Like is an idempotent per-user job bookmark; the composite unique index
// is the only guard against concurrent double inserts.
type Like struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_job" json:"user_id"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_job" json:"job_id"`
}

type Favorite struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_job" json:"user_id"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_job" json:"job_id"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
