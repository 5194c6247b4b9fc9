package dto

// DashboardResponse aggregates the landing view for the signed-in role.
// Sections not applicable to the role are left nil and omitted.
type DashboardResponse struct {
	Role string  `json:"role"`
	User UserDTO `json:"user"`

	// Candidate sections
	OpenJobs     *JobListResponse         `json:"open_jobs,omitempty"`
	Applications *ApplicationListResponse `json:"applications,omitempty"`
	Favorites    *JobListResponse         `json:"favorites,omitempty"`

	// Client sections
	Requests *JobRequestListResponse `json:"requests,omitempty"`

	// Recruiter sections
	MyJobs           *JobListResponse        `json:"my_jobs,omitempty"`
	AssignedRequests *JobRequestListResponse `json:"assigned_requests,omitempty"`
	Tasks            *TaskListResponse       `json:"tasks,omitempty"`

	News *NewsListResponse `json:"news,omitempty"`
}
