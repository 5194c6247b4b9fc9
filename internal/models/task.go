package models

import "time"

// Task is a recruiter-only to-do item, unrelated to jobs.
type Task struct {
	BaseModel
	CreatedByID string       `gorm:"type:uuid;not null;index" json:"created_by_id"`
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      TaskStatus   `gorm:"type:varchar(20);default:'open'" json:"status"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}
