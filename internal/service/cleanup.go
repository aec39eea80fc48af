package service

import (
	"waitlist/internal/repository"

	"go.uber.org/zap"
)

// PreferenceRetentionDays is how long an untouched locale preference is kept
const PreferenceRetentionDays = 180

// CleanupService handles periodic removal of stale data
type CleanupService struct {
	prefRepo repository.PreferenceRepository
	logger   *zap.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(prefRepo repository.PreferenceRepository, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// CleanupOldData removes locale preferences not updated within the retention window
func (s *CleanupService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of stale preferences", zap.Int("retention_days", PreferenceRetentionDays))

	err := s.prefRepo.CleanStalePreferences(PreferenceRetentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup stale preferences", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
