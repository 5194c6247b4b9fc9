package handlers

import (
	"net/http"

	"kirismor_backend/internal/middleware"
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/services"
	"kirismor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler serves the guest comment flow. Submission and token
// verification are public; the email round trip is the identity proof.
// Reading feedback is reserved for the recruiter who owns the job.
type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/feedback", h.Submit)
	rg.GET("/feedback/verify", h.Verify)

	recruiterOnly := rg.Group("")
	recruiterOnly.Use(middleware.AuthMiddleware())
	recruiterOnly.Use(middleware.RequireRoles(models.UserRoleRecruiter))
	{
		recruiterOnly.GET("/jobs/:id/feedback", h.ListByJob)
		recruiterOnly.GET("/my/feedback", h.ListMine)
	}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.feedbackService.Submit(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusAccepted
	if response.Posted {
		status = http.StatusCreated
	}
	c.JSON(status, response)
}

func (h *FeedbackHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	db := h.GetDB(c)

	response, err := h.feedbackService.Verify(db, token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *FeedbackHandler) ListByJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.feedbackService.ListByJob(db, c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListMine aggregates feedback across every job the recruiter owns.
// An optional ?q= narrows by job title.
func (h *FeedbackHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.feedbackService.ListForRecruiter(db, userID, c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
