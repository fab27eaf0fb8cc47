package seed

import (
	"net/url"
	"testing"
	"time"

	"scamwatch/internal/models"
)

func TestBuildReport_TimestampsAndFormats(t *testing.T) {
	opts := Options{DryRun: true, MaxDays: 30}
	f := NewFactory(nil, opts)
	owner := &models.User{ID: 1}

	for i := 0; i < 20; i++ {
		r := f.BuildReport(owner)

		if !r.Type.Valid() {
			t.Fatalf("invalid report type: %s", r.Type)
		}
		if !r.Status.Valid() {
			t.Fatalf("invalid report status: %s", r.Status)
		}
		if r.UserID == nil || *r.UserID != owner.ID {
			t.Fatalf("expected owner %d, got %v", owner.ID, r.UserID)
		}
		if r.AmountLost < 0 {
			t.Fatalf("negative amount lost: %f", r.AmountLost)
		}

		// timestamp should be within MaxDays
		if time.Since(r.CreatedAt) > (time.Duration(opts.MaxDays)+1)*24*time.Hour {
			t.Fatalf("created_at too old: %v", r.CreatedAt)
		}
		if r.DateOfIncident.After(r.CreatedAt) {
			t.Fatalf("incident date %v after report date %v", r.DateOfIncident, r.CreatedAt)
		}

		for _, e := range r.Evidence {
			if _, err := url.ParseRequestURI(e.URL); err != nil {
				t.Fatalf("invalid evidence url %q: %v", e.URL, err)
			}
		}
	}
}

func TestBuildReport_AnonymousOwner(t *testing.T) {
	f := NewFactory(nil, Options{DryRun: true})

	r := f.BuildReport(nil)
	if r.UserID != nil {
		t.Fatalf("expected nil owner, got %v", *r.UserID)
	}
}

func TestCreateStatusNotification_MessageFormat(t *testing.T) {
	f := NewFactory(nil, Options{DryRun: true})
	userID := uint(7)
	report := &models.Report{
		ID:     3,
		UserID: &userID,
		Title:  "Fake shop",
		Status: models.ReportStatusVerified,
	}

	n, err := f.CreateStatusNotification(report)
	if err != nil {
		t.Fatalf("CreateStatusNotification: %v", err)
	}
	want := `Your report "Fake shop" status has been updated to verified`
	if n.Message != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", n.Message, want)
	}
	if n.Type != models.NotificationTypeReportStatusUpdate {
		t.Fatalf("unexpected type: %s", n.Type)
	}
}

func TestCreateStatusNotification_RequiresOwner(t *testing.T) {
	f := NewFactory(nil, Options{DryRun: true})

	if _, err := f.CreateStatusNotification(&models.Report{ID: 1}); err == nil {
		t.Fatalf("expected error for ownerless report")
	}
}
