package models

type UserStatus string
type UserRole string
type JobStatus string
type ApplicationStatus string
type RequestStatus string
type TaskStatus string
type TaskPriority string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCandidate UserRole = "candidate"
	UserRoleClient    UserRole = "client"
	UserRoleRecruiter UserRole = "recruiter"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	RequestStatusPending    RequestStatus = "pending"
	RequestStatusProcessing RequestStatus = "processing"
	RequestStatusCompleted  RequestStatus = "completed"

	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"

	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ValidRole reports whether role is one of the three registrable roles.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleCandidate, UserRoleClient, UserRoleRecruiter:
		return true
	}
	return false
}

func ValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusSubmitted, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

func ValidRequestStatus(status RequestStatus) bool {
	switch status {
	case RequestStatusPending, RequestStatusProcessing, RequestStatusCompleted:
		return true
	}
	return false
}

func ValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

func ValidTaskPriority(priority TaskPriority) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}
