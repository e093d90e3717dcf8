package service

import (
	"context"
	"fmt"
	"time"

	"go-gin-gorm-crm/internal/core/cache"
	"go-gin-gorm-crm/internal/domain"
)

const (
	statsKey    = "dashboard:stats"
	pipelineKey = "dashboard:pipeline"
)

// DashboardService serves the aggregate figures, read through the cache when
// one is configured.
type DashboardService struct {
	base
	ttl time.Duration
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	st, err := cache.GetOrLoadJSON(s.cache, ctx, statsKey, s.ttl, func(ctx context.Context) (*domain.DashboardStats, error) {
		return s.uow.Stats().Dashboard(ctx, s.now())
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return st, nil
}

func (s *DashboardService) Pipeline(ctx context.Context) ([]domain.StageSummary, error) {
	rows, err := cache.GetOrLoadJSON(s.cache, ctx, pipelineKey, s.ttl, func(ctx context.Context) (*[]domain.StageSummary, error) {
		p, err := s.uow.Stats().Pipeline(ctx)
		if err != nil {
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard pipeline: %w", err)
	}
	if rows == nil {
		return nil, nil
	}
	return *rows, nil
}
