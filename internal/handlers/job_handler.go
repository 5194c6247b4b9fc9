package handlers

import (
	"net/http"

	"kirismor_backend/internal/middleware"
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/services"
	"kirismor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Browsing and applying are open to guests.
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.OptionalAuthMiddleware())
	{
		jobs.GET("", h.ListOpenJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id/apply", h.Apply)
	}

	recruiterJobs := rg.Group("/jobs")
	recruiterJobs.Use(middleware.AuthMiddleware())
	recruiterJobs.Use(middleware.RequireRoles(models.UserRoleRecruiter))
	{
		recruiterJobs.POST("", h.CreateJob)
		recruiterJobs.PUT("/:id", h.UpdateJob)
		recruiterJobs.POST("/:id/close", h.CloseJob)
		recruiterJobs.GET("/:id/applications", h.ListApplications)
	}

	mine := rg.Group("/my")
	mine.Use(middleware.AuthMiddleware())
	{
		mine.GET("/jobs", middleware.RequireRoles(models.UserRoleRecruiter), h.ListMyJobs)
		mine.GET("/applications", middleware.RequireRoles(models.UserRoleCandidate), h.ListMyApplications)
		mine.GET("/job-applications", middleware.RequireRoles(models.UserRoleRecruiter), h.ListReceivedApplications)
	}

	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	applications.Use(middleware.RequireRoles(models.UserRoleRecruiter))
	{
		applications.PATCH("/:id/status", h.UpdateApplicationStatus)
	}
}

func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)
	viewerID := middleware.GetUserID(c)

	response, err := h.jobService.ListOpenJobs(db, viewerID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	db := h.GetDB(c)
	viewerID := middleware.GetUserID(c)

	response, err := h.jobService.GetJob(db, c.Param("id"), viewerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Apply accepts both authenticated candidates and anonymous guests.
func (h *JobHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	var applicantID *string
	if id := middleware.GetUserID(c); id != "" {
		applicantID = &id
	}

	response, err := h.applicationService.Apply(db, c.Param("id"), applicantID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.CreateJob(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.UpdateJob(db, c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.CloseJob(db, c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job closed"})
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.ListMyJobs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.applicationService.ListByJob(db, c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) ListMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.applicationService.ListMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListReceivedApplications aggregates applications across every job the
// recruiter owns. An optional ?q= narrows by job title.
func (h *JobHandler) ListReceivedApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.applicationService.ListForRecruiter(db, userID, c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.applicationService.UpdateStatus(db, c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
