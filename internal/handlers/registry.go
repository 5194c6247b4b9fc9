package handlers

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	ProfileHandler   *ProfileHandler
	JobHandler       *JobHandler
	FavoriteHandler  *FavoriteHandler
	FeedbackHandler  *FeedbackHandler
	RequestHandler   *RequestHandler
	TaskHandler      *TaskHandler
	NewsHandler      *NewsHandler
	DashboardHandler *DashboardHandler
}
