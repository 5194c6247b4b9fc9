package handlers

import (
	"net/http"

	"kirismor_backend/internal/middleware"
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	jobs.Use(middleware.RequireRoles(models.UserRoleCandidate))
	{
		jobs.POST("/:id/like", h.LikeJob)
		jobs.DELETE("/:id/like", h.UnlikeJob)
		jobs.POST("/:id/favorite", h.FavoriteJob)
		jobs.DELETE("/:id/favorite", h.UnfavoriteJob)
	}

	mine := rg.Group("/my")
	mine.Use(middleware.AuthMiddleware())
	{
		mine.GET("/favorites", middleware.RequireRoles(models.UserRoleCandidate), h.ListFavoriteJobs)
	}

	recruiters := rg.Group("/recruiters")
	recruiters.Use(middleware.AuthMiddleware())
	recruiters.Use(middleware.RequireRoles(models.UserRoleClient))
	{
		recruiters.POST("/:id/favorite", h.FavoriteRecruiter)
		recruiters.DELETE("/:id/favorite", h.UnfavoriteRecruiter)
	}
}

func (h *FavoriteHandler) LikeJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.favoriteService.LikeJob(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FavoriteHandler) UnlikeJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.favoriteService.UnlikeJob(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FavoriteHandler) FavoriteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.favoriteService.FavoriteJob(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FavoriteHandler) UnfavoriteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.favoriteService.UnfavoriteJob(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

func (h *FavoriteHandler) ListFavoriteJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.favoriteService.ListFavoriteJobs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *FavoriteHandler) FavoriteRecruiter(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.favoriteService.FavoriteRecruiter(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FavoriteHandler) UnfavoriteRecruiter(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.favoriteService.UnfavoriteRecruiter(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
