package service

import (
	"context"

	"scamwatch/internal/cache"
	"scamwatch/internal/repository"
)

type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// Stats is the aggregate analytics payload.
type Stats struct {
	TotalReports    int64                    `json:"totalReports"`
	ReportsByType   []repository.TypeCount   `json:"reportsByType"`
	ReportsByStatus []repository.StatusCount `json:"reportsByStatus"`
	TotalAmountLost float64                  `json:"totalAmountLost"`
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// GetStats aggregates the dashboard numbers, served through the cache.
func (s *AnalyticsService) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := cache.CacheAside(ctx, cache.StatsKey, &stats, cache.StatsTTL, func() error {
		return s.loadStats(ctx, &stats)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AnalyticsService) loadStats(ctx context.Context, stats *Stats) error {
	total, err := s.analyticsRepo.TotalReports(ctx)
	if err != nil {
		return err
	}
	byType, err := s.analyticsRepo.CountByType(ctx)
	if err != nil {
		return err
	}
	byStatus, err := s.analyticsRepo.CountByStatus(ctx)
	if err != nil {
		return err
	}
	amountLost, err := s.analyticsRepo.TotalAmountLost(ctx)
	if err != nil {
		return err
	}

	if byType == nil {
		byType = []repository.TypeCount{}
	}
	if byStatus == nil {
		byStatus = []repository.StatusCount{}
	}

	stats.TotalReports = total
	stats.ReportsByType = byType
	stats.ReportsByStatus = byStatus
	stats.TotalAmountLost = amountLost
	return nil
}
