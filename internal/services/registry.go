package services

import "kirismor_backend/internal/email"

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	ProfileService     ProfileService
	JobService         JobService
	ApplicationService ApplicationService
	FavoriteService    FavoriteService
	FeedbackService    FeedbackService
	RequestService     RequestService
	TaskService        TaskService
	NewsService        NewsService
	DashboardService   DashboardService
	EmailProvider      email.Provider
}
