package handlers

import (
	"net/http"

	"kirismor_backend/internal/middleware"
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/services"
	"kirismor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	*BaseHandler
	newsService services.NewsService
}

func NewNewsHandler(base *BaseHandler, newsService services.NewsService) *NewsHandler {
	return &NewsHandler{
		BaseHandler: base,
		newsService: newsService,
	}
}

func (h *NewsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	news := rg.Group("/news")
	news.Use(middleware.AuthMiddleware())
	{
		news.GET("", h.ListNews)
	}

	admin := rg.Group("/admin/news")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.StaffMiddleware())
	{
		admin.GET("", h.ListAllNews)
		admin.POST("", h.CreateNews)
		admin.PUT("/:id", h.UpdateNews)
		admin.DELETE("/:id", h.DeleteNews)
	}
}

// ListNews returns the feed for the caller's own role.
func (h *NewsHandler) ListNews(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)
	role := models.UserRole(c.GetString("role"))

	response, err := h.newsService.ListForRole(db, role, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListAllNews is the back-office view: every item regardless of target role.
func (h *NewsHandler) ListAllNews(c *gin.Context) {
	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)

	response, err := h.newsService.ListAll(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req dto.CreateNewsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.newsService.CreateNews(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *NewsHandler) UpdateNews(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.newsService.UpdateNews(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.newsService.DeleteNews(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News deleted"})
}
