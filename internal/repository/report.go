package repository

import (
	"context"
	"errors"

	"scamwatch/internal/cache"
	"scamwatch/internal/models"
	"scamwatch/internal/observability"

	"gorm.io/gorm"
)

// ReportFilter narrows report listings. Zero values mean no filtering on that field.
type ReportFilter struct {
	Type     string
	Status   string
	Location string
}

// ReportRepository defines persistence operations for scam reports and their evidence.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	IncrementViews(ctx context.Context, id uint) error
	List(ctx context.Context, filter ReportFilter, limit, offset int) ([]models.Report, error)
	Count(ctx context.Context, filter ReportFilter) (int64, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Report, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Trending(ctx context.Context) ([]models.Report, error)
	Vote(ctx context.Context, id uint, direction string) error
	GetVoteCounts(ctx context.Context, id uint) (*models.VoteCount, error)
	UpdateStatus(ctx context.Context, id uint, status models.ReportStatus) error
	Delete(ctx context.Context, id uint) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository returns a new ReportRepository implementation.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts the report row first, then its evidence rows one by one.
// Evidence inserts are deliberately outside a transaction: a failed evidence
// row leaves the report and any earlier evidence in place.
func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Create", "reports")
	defer span.End()

	evidence := report.Evidence
	report.Evidence = nil

	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		report.Evidence = evidence
		return models.NewStorageError(err)
	}

	for i := range evidence {
		evidence[i].ReportID = report.ID
		if err := r.db.WithContext(ctx).Create(&evidence[i]).Error; err != nil {
			report.Evidence = evidence[:i+1]
			return models.NewStorageError(err)
		}
	}

	report.Evidence = evidence
	cache.InvalidateReportAggregates(ctx)
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Preload("Evidence", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Report")
		}
		return nil, models.NewStorageError(err)
	}
	return &report, nil
}

func (r *reportRepository) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// applyFilter adds the shared WHERE clauses used by both List and Count.
func (r *reportRepository) applyFilter(db *gorm.DB, filter ReportFilter) *gorm.DB {
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Location != "" {
		// LOWER/LIKE instead of ILIKE so the query also runs on SQLite in tests
		db = db.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	return db
}

func (r *reportRepository) List(ctx context.Context, filter ReportFilter, limit, offset int) ([]models.Report, error) {
	var reports []models.Report
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Evidence", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return reports, nil
}

func (r *reportRepository) Count(ctx context.Context, filter ReportFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Report{}), filter).
		Count(&count).Error
	if err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}

func (r *reportRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Preload("Evidence", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return reports, nil
}

func (r *reportRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}

func (r *reportRepository) Trending(ctx context.Context) ([]models.Report, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Trending", "reports")
	defer span.End()

	var reports []models.Report
	err := r.db.WithContext(ctx).
		Preload("Evidence", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("view_count DESC, upvotes DESC, created_at DESC").
		Limit(20).
		Find(&reports).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return reports, nil
}

// Vote increments the counter for the given direction atomically in storage.
// The caller validates direction; only "up" and "down" reach this method.
func (r *reportRepository) Vote(ctx context.Context, id uint, direction string) error {
	column := "upvotes"
	if direction == "down" {
		column = "downvotes"
	}

	result := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return models.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Report")
	}
	return nil
}

func (r *reportRepository) GetVoteCounts(ctx context.Context, id uint) (*models.VoteCount, error) {
	var counts models.VoteCount
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Select("upvotes, downvotes").
		Where("id = ?", id).
		Take(&counts).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Report")
		}
		return nil, models.NewStorageError(err)
	}
	return &counts, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id uint, status models.ReportStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return models.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Report")
	}
	cache.InvalidateReportAggregates(ctx)
	return nil
}

// Delete removes the report together with its evidence in one transaction.
// Notifications referencing the report are left in place; the listing join
// degrades their report projection to NULL.
func (r *reportRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).Delete(&models.Evidence{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Report{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Report")
		}
		return models.NewStorageError(err)
	}
	cache.InvalidateReportAggregates(ctx)
	return nil
}
