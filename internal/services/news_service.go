package services

import (
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NewsService interface {
	CreateNews(db *gorm.DB, req *dto.CreateNewsRequest) (*dto.NewsResponse, error)
	UpdateNews(db *gorm.DB, newsID string, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error)
	DeleteNews(db *gorm.DB, newsID string) error
	ListForRole(db *gorm.DB, role models.UserRole, page, pageSize int) (*dto.NewsListResponse, error)
	ListAll(db *gorm.DB, page, pageSize int) (*dto.NewsListResponse, error)
}

type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

func NewNewsService(newsRepo repositories.NewsRepository) NewsService {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

func (s *NewsServiceImpl) CreateNews(db *gorm.DB, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	news := &models.News{
		Title:   req.Title,
		Content: req.Content,
		Role:    req.Role,
	}

	if err := s.newsRepo.Create(db, news); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildNewsResponse(news), nil
}

func (s *NewsServiceImpl) UpdateNews(db *gorm.DB, newsID string, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.FindByID(db, newsID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Content != nil {
		news.Content = *req.Content
	}

	if err := s.newsRepo.Update(db, news); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildNewsResponse(news), nil
}

func (s *NewsServiceImpl) DeleteNews(db *gorm.DB, newsID string) error {
	err := s.newsRepo.Delete(db, newsID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListForRole returns the feed targeted at the given role.
func (s *NewsServiceImpl) ListForRole(db *gorm.DB, role models.UserRole, page, pageSize int) (*dto.NewsListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	items, total, err := s.newsRepo.FindByRole(db, role, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildNewsList(items, page, pageSize, total), nil
}

func (s *NewsServiceImpl) ListAll(db *gorm.DB, page, pageSize int) (*dto.NewsListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	items, total, err := s.newsRepo.FindAll(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildNewsList(items, page, pageSize, total), nil
}

func buildNewsList(items []models.News, page, pageSize int, total int64) *dto.NewsListResponse {
	out := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		out = append(out, *buildNewsResponse(&items[i]))
	}
	return &dto.NewsListResponse{
		News:       out,
		Pagination: dto.NewPagination(page, pageSize, total),
	}
}

func buildNewsResponse(n *models.News) *dto.NewsResponse {
	return &dto.NewsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Role:      n.Role,
		CreatedAt: n.CreatedAt,
	}
}
