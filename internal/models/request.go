package models

// JobRequest is a client's ask for a recruiter to source candidates.
// Once RecruiterID is set it never changes; the service layer rejects
// reassignment attempts.
type JobRequest struct {
	BaseModel
	EmployerID   string        `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title        string        `gorm:"size:200;not null" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	Requirements string        `gorm:"type:text" json:"requirements"`
	Status       RequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	RecruiterID  *string       `gorm:"type:uuid;index" json:"recruiter_id,omitempty"`

	Employer      *User                    `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Recruiter     *User                    `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
	StatusUpdates []JobRequestStatusUpdate `gorm:"foreignKey:JobRequestID" json:"status_updates,omitempty"`
}

// JobRequestStatusUpdate is an append-only audit entry; rows are never
// updated or deleted.
type JobRequestStatusUpdate struct {
	BaseModel
	JobRequestID string        `gorm:"type:uuid;not null;index" json:"job_request_id"`
	NewStatus    RequestStatus `gorm:"type:varchar(20);not null" json:"new_status"`
	UpdatedByID  string        `gorm:"type:uuid;not null" json:"updated_by_id"`
	Message      string        `gorm:"type:text" json:"message"`

	UpdatedBy *User `gorm:"foreignKey:UpdatedByID" json:"updated_by,omitempty"`
}

// FavoriteRecruiter bookmarks a recruiter profile for a client.
type FavoriteRecruiter struct {
	BaseModel
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:idx_fav_recruiter_pair" json:"user_id"`
	RecruiterID string `gorm:"type:uuid;not null;uniqueIndex:idx_fav_recruiter_pair" json:"recruiter_id"`

	Recruiter *RecruiterProfile `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
}
