// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"scamwatch/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:  gofakeit.Name(),
		Email: fmt.Sprintf("%s%d@example.com", gofakeit.Username(), gofakeit.Number(100, 999)),
	}

	// Secret handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Secret = "password123"
	} else {
		hashedSecret, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Secret = string(hashedSecret)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Name, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildReport constructs a report struct with realistic content but does not
// persist it. Useful for batching and tests.
func (f *Factory) BuildReport(owner *models.User, overrides ...func(*models.Report)) *models.Report {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	reportType := models.ReportTypes[r.Intn(len(models.ReportTypes))]
	status := models.ReportStatuses[r.Intn(len(models.ReportStatuses))]
	location := seedLocations[r.Intn(len(seedLocations))]

	report := &models.Report{
		Title:       randomTitle(r, reportType),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Type:        reportType,
		Status:      status,
		AmountLost:  float64(r.Intn(500000)) / 100,
		Location:    &location,
		ViewCount:   r.Intn(200),
		Upvotes:     r.Intn(50),
		Downvotes:   r.Intn(10),
	}
	if owner != nil {
		report.UserID = &owner.ID
	}

	// Half the reports carry scammer details
	if r.Intn(2) == 0 {
		name := gofakeit.Company()
		phone := gofakeit.Phone()
		website := gofakeit.URL()
		report.ScammerInfo = models.ScammerInfo{
			Name:    &name,
			Phone:   &phone,
			Website: &website,
		}
	}

	// realistic created_at and incident date spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	report.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
	report.DateOfIncident = report.CreatedAt.AddDate(0, 0, -r.Intn(14)).Truncate(24 * time.Hour)

	// Most reports carry at least one evidence link
	evidenceCount := r.Intn(4)
	for i := 0; i < evidenceCount; i++ {
		description := gofakeit.Sentence(6)
		report.Evidence = append(report.Evidence, models.Evidence{
			URL:         fmt.Sprintf("https://evidence.example.com/%s", gofakeit.UUID()),
			Description: &description,
		})
	}

	for _, override := range overrides {
		override(report)
	}
	return report
}

// CreateReport constructs and persists a sample `models.Report` with evidence.
func (f *Factory) CreateReport(owner *models.User, overrides ...func(*models.Report)) (*models.Report, error) {
	report := f.BuildReport(owner, overrides...)

	if f.opts.DryRun {
		f.nextID++
		report.ID = f.nextID
		log.Printf("[dry-run] CreateReport: type=%s status=%s title=%q evidence=%d",
			report.Type, report.Status, report.Title, len(report.Evidence))
		return report, nil
	}

	if err := f.db.Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// CreateReportsBatch persists multiple reports in a single DB call when possible.
func (f *Factory) CreateReportsBatch(reports []*models.Report) error {
	if f.opts.DryRun {
		for _, r := range reports {
			f.nextID++
			r.ID = f.nextID
		}
		log.Printf("[dry-run] CreateReportsBatch: %d reports (no DB write)", len(reports))
		return nil
	}
	return f.db.Create(&reports).Error
}

// CreateStatusNotification persists the status-update notification a real
// moderation pass would have produced for the report owner.
func (f *Factory) CreateStatusNotification(report *models.Report) (*models.Notification, error) {
	if report.UserID == nil {
		return nil, fmt.Errorf("report %d has no owner", report.ID)
	}

	reportID := report.ID
	notification := &models.Notification{
		UserID:   report.UserID,
		ReportID: &reportID,
		Type:     models.NotificationTypeReportStatusUpdate,
		Title:    "Report Status Updated",
		Message:  fmt.Sprintf("Your report %q status has been updated to %s", report.Title, report.Status),
	}

	if f.opts.DryRun {
		f.nextID++
		notification.ID = f.nextID
		log.Printf("[dry-run] CreateStatusNotification: user=%d report=%d", *report.UserID, report.ID)
		return notification, nil
	}

	if err := f.db.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}
