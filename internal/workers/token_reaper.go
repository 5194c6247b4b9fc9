package workers

import (
	"context"
	"time"

	"kirismor_backend/internal/config"
	"kirismor_backend/internal/logger"
	"kirismor_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenReaper periodically removes expired verification tokens, staged
// guest feedback, and refresh tokens.
type TokenReaper struct {
	db               *gorm.DB
	userRepo         repositories.UserRepository
	feedbackRepo     repositories.FeedbackRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenReaper(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	feedbackRepo repositories.FeedbackRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *TokenReaper {
	interval := time.Duration(cfg.Tokens.ReapIntervalMinutes) * time.Minute
	return &TokenReaper{
		db:               db,
		userRepo:         userRepo,
		feedbackRepo:     feedbackRepo,
		refreshTokenRepo: refreshTokenRepo,
		interval:         interval,
	}
}

func (w *TokenReaper) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenReaper) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token reaper stopped")
			return
		case <-ticker.C:
			w.reap()
		}
	}
}

func (w *TokenReaper) reap() {
	now := time.Now()

	if n, err := w.userRepo.ReapExpiredVerificationTokens(w.db, now); err != nil {
		logger.Error("Failed to reap verification tokens", "error", err)
	} else if n > 0 {
		logger.Info("Cleared expired verification tokens", "count", n)
	}

	if n, err := w.feedbackRepo.DeleteExpiredTemp(w.db, now); err != nil {
		logger.Error("Failed to reap staged feedback", "error", err)
	} else if n > 0 {
		logger.Info("Deleted expired staged feedback", "count", n)
	}

	if n, err := w.refreshTokenRepo.DeleteExpired(w.db, now); err != nil {
		logger.Error("Failed to reap refresh tokens", "error", err)
	} else if n > 0 {
		logger.Info("Deleted expired refresh tokens", "count", n)
	}
}
