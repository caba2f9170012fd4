package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"learnpath_backend/internal/adaptive"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/pkg/logger"
)

const contentCacheTTL = 5 * time.Minute

type ContentService struct {
	ContentRepo repository.ContentRepository
	Redis       *redis.Client
}

func NewContentService(contentRepo repository.ContentRepository, rdb *redis.Client) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		Redis:       rdb,
	}
}

// List returns the catalogue, optionally filtered by content type.
func (s *ContentService) List(contentType string) ([]model.ContentItem, error) {
	if contentType != "" {
		return s.ContentRepo.ListByType(contentType)
	}
	return s.ContentRepo.List()
}

// Prioritized partitions the catalogue for the user's learning style. The
// partition per style is cached when Redis is configured; content changes
// rarely and the split is deterministic.
func (s *ContentService) Prioritized(ctx context.Context, style model.LearningStyle) (*adaptive.ContentPartition, error) {
	cacheKey := "content:prioritized:" + string(adaptive.NormalizeStyle(string(style)))

	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached adaptive.ContentPartition
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	items, err := s.ContentRepo.List()
	if err != nil {
		return nil, err
	}

	partition := adaptive.PartitionContent(string(style), items)

	if s.Redis != nil {
		if raw, err := json.Marshal(partition); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, raw, contentCacheTTL).Err(); err != nil {
				logger.Log.Warn("content cache write failed", zap.Error(err))
			}
		}
	}

	return &partition, nil
}
