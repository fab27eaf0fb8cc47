package service

import (
	"context"
	"fmt"

	"scamwatch/internal/middleware"
	"scamwatch/internal/models"
	"scamwatch/internal/repository"
)

type NotificationService struct {
	notifRepo repository.NotificationRepository
}

// NotificationList is the per-user notification feed payload.
type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}

func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// NotifyStatusChanged records a status-update notification for the report owner.
func (s *NotificationService) NotifyStatusChanged(ctx context.Context, userID uint, report *models.Report, status models.ReportStatus) error {
	reportID := report.ID
	notification := &models.Notification{
		UserID:   &userID,
		ReportID: &reportID,
		Type:     models.NotificationTypeReportStatusUpdate,
		Title:    "Report Status Updated",
		Message:  fmt.Sprintf("Your report %q status has been updated to %s", report.Title, status),
	}
	if err := s.notifRepo.Create(ctx, notification); err != nil {
		return err
	}
	middleware.NotificationsCreated.WithLabelValues(string(notification.Type)).Inc()
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID uint, limit, offset int) (*NotificationList, error) {
	notifications, err := s.notifRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.notifRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return &NotificationList{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) (*models.Notification, error) {
	return s.notifRepo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notifRepo.MarkAllRead(ctx, userID)
}
