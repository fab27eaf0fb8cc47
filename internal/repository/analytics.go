package repository

import (
	"context"

	"scamwatch/internal/models"

	"gorm.io/gorm"
)

// TypeCount is a per-type aggregation row.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// StatusCount is a per-status aggregation row.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AnalyticsRepository defines the aggregate queries behind the stats endpoint.
type AnalyticsRepository interface {
	TotalReports(ctx context.Context) (int64, error)
	CountByType(ctx context.Context) ([]TypeCount, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	TotalAmountLost(ctx context.Context) (float64, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository returns a new AnalyticsRepository implementation.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TotalReports(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Report{}).Count(&count).Error
	if err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}

func (r *analyticsRepository) CountByType(ctx context.Context) ([]TypeCount, error) {
	var rows []TypeCount
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Order("count DESC").
		Find(&rows).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return rows, nil
}

func (r *analyticsRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Find(&rows).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return rows, nil
}

func (r *analyticsRepository) TotalAmountLost(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Select("COALESCE(SUM(amount_lost), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, models.NewStorageError(err)
	}
	return total, nil
}
