package models

// News is a role-targeted announcement shown on the dashboard.
type News struct {
	BaseModel
	Title   string   `gorm:"size:200;not null" json:"title"`
	Content string   `gorm:"type:text" json:"content"`
	Role    UserRole `gorm:"type:varchar(20);not null;index" json:"role"`
}
