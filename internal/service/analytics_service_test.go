package service

import (
	"context"
	"testing"

	"scamwatch/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticsRepoStub is a stub for repository.AnalyticsRepository.
type analyticsRepoStub struct {
	totalReportsFn    func(context.Context) (int64, error)
	countByTypeFn     func(context.Context) ([]repository.TypeCount, error)
	countByStatusFn   func(context.Context) ([]repository.StatusCount, error)
	totalAmountLostFn func(context.Context) (float64, error)
}

func (s *analyticsRepoStub) TotalReports(ctx context.Context) (int64, error) {
	return s.totalReportsFn(ctx)
}
func (s *analyticsRepoStub) CountByType(ctx context.Context) ([]repository.TypeCount, error) {
	return s.countByTypeFn(ctx)
}
func (s *analyticsRepoStub) CountByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	return s.countByStatusFn(ctx)
}
func (s *analyticsRepoStub) TotalAmountLost(ctx context.Context) (float64, error) {
	return s.totalAmountLostFn(ctx)
}

func TestGetStats(t *testing.T) {
	repo := &analyticsRepoStub{
		totalReportsFn: func(_ context.Context) (int64, error) { return 42, nil },
		countByTypeFn: func(_ context.Context) ([]repository.TypeCount, error) {
			return []repository.TypeCount{{Type: "phishing", Count: 12}}, nil
		},
		countByStatusFn: func(_ context.Context) ([]repository.StatusCount, error) {
			return []repository.StatusCount{{Status: "pending", Count: 20}}, nil
		},
		totalAmountLostFn: func(_ context.Context) (float64, error) { return 1234.56, nil },
	}
	svc := NewAnalyticsService(repo)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalReports)
	require.Len(t, stats.ReportsByType, 1)
	assert.Equal(t, "phishing", stats.ReportsByType[0].Type)
	require.Len(t, stats.ReportsByStatus, 1)
	assert.Equal(t, "pending", stats.ReportsByStatus[0].Status)
	assert.InDelta(t, 1234.56, stats.TotalAmountLost, 0.001)
}

func TestGetStats_EmptyTables(t *testing.T) {
	repo := &analyticsRepoStub{
		totalReportsFn:    func(_ context.Context) (int64, error) { return 0, nil },
		countByTypeFn:     func(_ context.Context) ([]repository.TypeCount, error) { return nil, nil },
		countByStatusFn:   func(_ context.Context) ([]repository.StatusCount, error) { return nil, nil },
		totalAmountLostFn: func(_ context.Context) (float64, error) { return 0, nil },
	}
	svc := NewAnalyticsService(repo)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalReports)
	assert.NotNil(t, stats.ReportsByType)
	assert.Empty(t, stats.ReportsByType)
	assert.NotNil(t, stats.ReportsByStatus)
	assert.Empty(t, stats.ReportsByStatus)
	assert.Zero(t, stats.TotalAmountLost)
}
