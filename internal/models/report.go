// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// ReportType classifies the kind of scam a report describes.
type ReportType string

// Report types accepted at the storage boundary.
const (
	ReportTypePhishing       ReportType = "phishing"
	ReportTypeInvestment     ReportType = "investment_scam"
	ReportTypeRomance        ReportType = "romance_scam"
	ReportTypeFakeStore      ReportType = "fake_online_store"
	ReportTypeTechSupport    ReportType = "tech_support_scam"
	ReportTypeLottery        ReportType = "lottery_scam"
	ReportTypeCryptocurrency ReportType = "cryptocurrency_scam"
	ReportTypeEmployment     ReportType = "employment_scam"
	ReportTypeOther          ReportType = "other"
)

// ReportTypes lists every valid report type.
var ReportTypes = []ReportType{
	ReportTypePhishing,
	ReportTypeInvestment,
	ReportTypeRomance,
	ReportTypeFakeStore,
	ReportTypeTechSupport,
	ReportTypeLottery,
	ReportTypeCryptocurrency,
	ReportTypeEmployment,
	ReportTypeOther,
}

// Valid reports whether t is a member of the report type enumeration.
func (t ReportType) Valid() bool {
	for _, v := range ReportTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ReportStatus is the moderation state of a report.
type ReportStatus string

// Report statuses in workflow order.
const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusUnderReview ReportStatus = "under_review"
	ReportStatusVerified    ReportStatus = "verified"
	ReportStatusResolved    ReportStatus = "resolved"
	ReportStatusRejected    ReportStatus = "rejected"
)

// ReportStatuses lists every valid report status.
var ReportStatuses = []ReportStatus{
	ReportStatusPending,
	ReportStatusUnderReview,
	ReportStatusVerified,
	ReportStatusResolved,
	ReportStatusRejected,
}

// Valid reports whether s is a member of the report status enumeration.
func (s ReportStatus) Valid() bool {
	for _, v := range ReportStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ScammerInfo holds the optional descriptors of the reported scammer.
// Every sub-field is independently optional; absent values persist as NULL.
type ScammerInfo struct {
	Name        *string `gorm:"type:varchar(255)" json:"name,omitempty"`
	Phone       *string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Email       *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Website     *string `gorm:"type:varchar(255)" json:"website,omitempty"`
	SocialMedia *string `gorm:"type:varchar(255)" json:"social_media,omitempty"`
}

// Report is a user-submitted scam report.
type Report struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      *uint   `gorm:"index" json:"user_id,omitempty"`
	User        *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Type        ReportType   `gorm:"type:varchar(50);not null;index" json:"type"`
	Status      ReportStatus `gorm:"type:varchar(50);not null;default:'pending';index" json:"status"`
	ScammerInfo ScammerInfo  `gorm:"embedded;embeddedPrefix:scammer_" json:"scammer_info"`
	AmountLost  float64   `gorm:"type:numeric(12,2);not null;default:0" json:"amount_lost"`
	DateOfIncident time.Time `gorm:"type:date;not null" json:"date_of_incident"`
	Location    *string `gorm:"type:varchar(255)" json:"location,omitempty"`
	ViewCount   int     `gorm:"not null;default:0" json:"view_count"`
	Upvotes     int     `gorm:"not null;default:0" json:"upvotes"`
	Downvotes   int     `gorm:"not null;default:0" json:"downvotes"`
	// IsTrending is persisted but never recomputed here; the trending feed is
	// an ordered query, not this flag.
	IsTrending bool       `gorm:"not null;default:false" json:"is_trending"`
	Evidence   []Evidence `gorm:"foreignKey:ReportID" json:"evidence"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Evidence is a URL plus free-text description substantiating a report.
// It is owned exclusively by its report and is removed with it.
type Evidence struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ReportID    uint    `gorm:"not null;index" json:"report_id"`
	URL         string  `gorm:"type:varchar(512);not null" json:"url"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

// VoteCount is the post-increment tally pair returned after a vote.
type VoteCount struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}
