package service

import (
	"context"
	"testing"

	"scamwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationList(t *testing.T) {
	repo := noopNotifRepo()
	var gotLimit, gotOffset int
	fakeShop, phishingMail := "Fake shop", "Phishing mail"
	repo.listByUserFn = func(_ context.Context, _ uint, limit, offset int) ([]models.Notification, error) {
		gotLimit, gotOffset = limit, offset
		return []models.Notification{
			{ID: 2, Title: "Report Status Updated", ReportTitle: &fakeShop},
			{ID: 1, Title: "Report Status Updated", ReportTitle: &phishingMail},
		}, nil
	}
	repo.unreadCountFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }

	svc := NewNotificationService(repo)
	list, err := svc.List(context.Background(), 7, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, int64(3), list.UnreadCount)
	require.Len(t, list.Notifications, 2)
	require.NotNil(t, list.Notifications[0].ReportTitle)
	assert.Equal(t, "Fake shop", *list.Notifications[0].ReportTitle)
}

func TestNotificationList_EmptyFeed(t *testing.T) {
	svc := NewNotificationService(noopNotifRepo())
	list, err := svc.List(context.Background(), 7, 20, 0)
	require.NoError(t, err)
	assert.NotNil(t, list.Notifications)
	assert.Empty(t, list.Notifications)
	assert.Zero(t, list.UnreadCount)
}

func TestMarkRead_PassesThrough(t *testing.T) {
	repo := noopNotifRepo()
	repo.markReadFn = func(_ context.Context, id uint) (*models.Notification, error) {
		if id == 99 {
			return nil, models.NewNotFoundError("Notification")
		}
		return &models.Notification{ID: id, IsRead: true}, nil
	}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	n, err := svc.MarkRead(ctx, 1)
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	_, err = svc.MarkRead(ctx, 99)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestMarkAllRead(t *testing.T) {
	repo := noopNotifRepo()
	var gotUser uint
	repo.markAllReadFn = func(_ context.Context, userID uint) error {
		gotUser = userID
		return nil
	}
	svc := NewNotificationService(repo)

	assert.NoError(t, svc.MarkAllRead(context.Background(), 7))
	assert.Equal(t, uint(7), gotUser)
}
