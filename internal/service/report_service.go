// Package service implements the business rules between the HTTP handlers and
// the repositories.
package service

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"scamwatch/internal/cache"
	"scamwatch/internal/featureflags"
	"scamwatch/internal/middleware"
	"scamwatch/internal/models"
	"scamwatch/internal/observability"
	"scamwatch/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

const trendingCacheFlag = "trending_cache"

type ReportService struct {
	reportRepo   repository.ReportRepository
	notifService *NotificationService
	flags        *featureflags.Manager
}

// EvidenceInput is one evidence link attached to a new report. Clients may
// send either a bare URL string or an object with url/description.
type EvidenceInput struct {
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

func (e *EvidenceInput) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		e.URL = bare
		e.Description = nil
		return nil
	}

	type evidenceObject EvidenceInput
	var obj evidenceObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = EvidenceInput(obj)
	return nil
}

type CreateReportInput struct {
	UserID         *uint
	Title          string
	Description    string
	Type           string
	ScammerInfo    models.ScammerInfo
	AmountLost     *float64
	DateOfIncident string
	Location       *string
	Evidence       []EvidenceInput
}

type ListReportsInput struct {
	Type     string
	Status   string
	Location string
	Page     int
	Limit    int
}

// ReportList is the paginated listing payload.
type ReportList struct {
	Reports     []models.Report `json:"reports"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}

func NewReportService(
	reportRepo repository.ReportRepository,
	notifService *NotificationService,
	flags *featureflags.Manager,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		notifService: notifService,
		flags:        flags,
	}
}

func (s *ReportService) CreateReport(ctx context.Context, in CreateReportInput) (*models.Report, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, models.NewValidationError("Description is required")
	}

	reportType := models.ReportType(in.Type)
	if !reportType.Valid() {
		return nil, models.NewValidationError("Invalid report type")
	}

	if in.DateOfIncident == "" {
		return nil, models.NewValidationError("Date of incident is required")
	}
	incident, err := time.Parse("2006-01-02", in.DateOfIncident)
	if err != nil {
		return nil, models.NewValidationError("Date of incident must be in YYYY-MM-DD format")
	}

	amountLost := 0.0
	if in.AmountLost != nil {
		if *in.AmountLost < 0 {
			return nil, models.NewValidationError("Amount lost cannot be negative")
		}
		amountLost = *in.AmountLost
	}

	evidence := make([]models.Evidence, 0, len(in.Evidence))
	for _, e := range in.Evidence {
		if strings.TrimSpace(e.URL) == "" {
			return nil, models.NewValidationError("Evidence URL is required")
		}
		if _, err := url.ParseRequestURI(e.URL); err != nil {
			return nil, models.NewValidationError("Evidence URL must be a valid URL")
		}
		evidence = append(evidence, models.Evidence{
			URL:         e.URL,
			Description: e.Description,
		})
	}

	report := &models.Report{
		UserID:         in.UserID,
		Title:          in.Title,
		Description:    in.Description,
		Type:           reportType,
		Status:         models.ReportStatusPending,
		ScammerInfo:    in.ScammerInfo,
		AmountLost:     amountLost,
		DateOfIncident: incident,
		Location:       in.Location,
		Evidence:       evidence,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	middleware.ReportsSubmitted.WithLabelValues(string(reportType)).Inc()
	return report, nil
}

// GetReport returns the report as it was before the lookup bumped its view
// counter. The returned view_count is the pre-increment value.
func (s *ReportService) GetReport(ctx context.Context, id uint) (*models.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) ListReports(ctx context.Context, in ListReportsInput) (*ReportList, error) {
	// Filter values are not validated: an unrecognized type or status is an
	// exact-match predicate that matches nothing, so the page comes back empty.
	filter := repository.ReportFilter{
		Type:     in.Type,
		Status:   in.Status,
		Location: in.Location,
	}

	offset := (in.Page - 1) * in.Limit
	reports, err := s.reportRepo.List(ctx, filter, in.Limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.reportRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(in.Limit) - 1) / int64(in.Limit))
	if reports == nil {
		reports = []models.Report{}
	}

	return &ReportList{
		Reports:     reports,
		TotalPages:  totalPages,
		CurrentPage: in.Page,
		Total:       total,
	}, nil
}

func (s *ReportService) ListUserReports(ctx context.Context, userID uint, page, limit int) (*ReportList, error) {
	offset := (page - 1) * limit
	reports, err := s.reportRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.reportRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if reports == nil {
		reports = []models.Report{}
	}

	return &ReportList{
		Reports:     reports,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

// Trending returns the most viewed reports. The result is served through the
// cache when the trending_cache flag is on.
func (s *ReportService) Trending(ctx context.Context) ([]models.Report, error) {
	if s.flags.Enabled(trendingCacheFlag, 0) {
		var reports []models.Report
		err := cache.CacheAside(ctx, cache.TrendingKey, &reports, cache.TrendingTTL, func() error {
			var fetchErr error
			reports, fetchErr = s.reportRepo.Trending(ctx)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		return reports, nil
	}
	return s.reportRepo.Trending(ctx)
}

// Vote applies a single up or down vote and returns the updated counters.
// Direction is validated before anything touches storage.
func (s *ReportService) Vote(ctx context.Context, id uint, direction string) (*models.VoteCount, error) {
	if direction != "up" && direction != "down" {
		return nil, models.NewValidationError("Invalid vote type")
	}

	if err := s.reportRepo.Vote(ctx, id, direction); err != nil {
		return nil, err
	}

	middleware.VotesCast.WithLabelValues(direction).Inc()
	return s.reportRepo.GetVoteCounts(ctx, id)
}

// UpdateStatus transitions the report and notifies its owner. The status
// write and the notification insert are separate statements: a failed
// notification leaves the new status in place.
func (s *ReportService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Report, error) {
	newStatus := models.ReportStatus(status)
	if !newStatus.Valid() {
		return nil, models.NewValidationError("Invalid status")
	}

	span, ctx := observability.NewSpan(ctx, "report.status_transition")
	defer span.End()
	span.AddAttributes(
		attribute.Int("report.id", int(id)),
		attribute.String("report.status", string(newStatus)),
	)

	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	if err := s.reportRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		span.SetError(err)
		return nil, err
	}
	report.Status = newStatus
	middleware.StatusTransitions.WithLabelValues(string(newStatus)).Inc()

	if report.UserID != nil {
		if err := s.notifService.NotifyStatusChanged(ctx, *report.UserID, report, newStatus); err != nil {
			span.SetError(err)
			return nil, err
		}
	}

	return report, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, id uint) error {
	return s.reportRepo.Delete(ctx, id)
}
