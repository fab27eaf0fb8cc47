package models

import (
	"time"
)

// NotificationType classifies a notification.
type NotificationType string

// Notification types. Only NotificationTypeReportStatusUpdate is produced by
// this service; the others are reserved for external producers.
const (
	NotificationTypeReportStatusUpdate NotificationType = "report_status_update"
	NotificationTypeNewSimilarScam     NotificationType = "new_similar_scam"
	NotificationTypeTrendingAlert      NotificationType = "trending_alert"
	NotificationTypeSystem             NotificationType = "system_notification"
)

// NotificationTypes lists every valid notification type.
var NotificationTypes = []NotificationType{
	NotificationTypeReportStatusUpdate,
	NotificationTypeNewSimilarScam,
	NotificationTypeTrendingAlert,
	NotificationTypeSystem,
}

// Valid reports whether t is a member of the notification type enumeration.
func (t NotificationType) Valid() bool {
	for _, v := range NotificationTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Notification is a persisted message for a user, created when a report's
// status changes. Clients poll for these; there is no push delivery.
type Notification struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	UserID   *uint            `gorm:"index" json:"user_id,omitempty"`
	ReportID *uint            `gorm:"index" json:"report_id,omitempty"`
	Type     NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Title    string           `gorm:"type:varchar(255);not null" json:"title"`
	Message  string           `gorm:"type:text;not null" json:"message"`
	IsRead   bool             `gorm:"not null;default:false" json:"is_read"`
	// ReportTitle and ReportType are not persisted; they are projected from
	// the related report at query time.
	ReportTitle *string   `gorm:"->;-:migration" json:"report_title,omitempty"`
	ReportType  *string   `gorm:"->;-:migration" json:"report_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
