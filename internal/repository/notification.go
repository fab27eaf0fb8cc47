package repository

import (
	"context"

	"scamwatch/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, id uint) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// ListByUser returns notifications newest first, joined with the report so
// the title and type of the subject report ride along in each row.
func (r *notificationRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Select("notifications.*, r.title AS report_title, r.type AS report_type").
		Joins("LEFT JOIN reports r ON r.id = notifications.report_id").
		Where("notifications.user_id = ?", userID).
		Order("notifications.created_at DESC, notifications.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}

// MarkRead flips is_read and returns the updated row. Marking an already-read
// notification again is a no-op success.
func (r *notificationRepository) MarkRead(ctx context.Context, id uint) (*models.Notification, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return nil, models.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Notification")
	}

	var notification models.Notification
	if err := r.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		return nil, models.NewStorageError(err)
	}
	return &notification, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}
