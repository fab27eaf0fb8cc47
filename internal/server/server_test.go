package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scamwatch/internal/config"
	"scamwatch/internal/database"
	"scamwatch/internal/featureflags"
	"scamwatch/internal/models"
	"scamwatch/internal/repository"
	"scamwatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupHandlerTestDB creates an in-memory SQLite database with the full schema.
func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestApp wires a Server with real repositories and services on top of the
// given database and returns a Fiber app with all routes registered.
// Prometheus middleware is skipped so repeated app construction does not
// re-register collectors.
func newTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	s := &Server{
		config:        &config.Config{Env: "test"},
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		reportRepo:    repository.NewReportRepository(db),
		notifRepo:     repository.NewNotificationRepository(db),
		analyticsRepo: repository.NewAnalyticsRepository(db),
		featureFlags:  featureflags.NewManager("trending_cache=off"),
	}
	s.userService = service.NewUserService(s.userRepo)
	s.notificationService = service.NewNotificationService(s.notifRepo)
	s.reportService = service.NewReportService(s.reportRepo, s.notificationService, s.featureFlags)
	s.analyticsService = service.NewAnalyticsService(s.analyticsRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, err)
		},
	})
	s.SetupRoutes(app)
	return app
}

// seedUser inserts a user row for handler tests.
func seedUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Secret: "s3cret"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// ctxCapturingReportRepo records the context its Trending method receives.
type ctxCapturingReportRepo struct {
	repository.ReportRepository
	gotCtx context.Context
}

func (r *ctxCapturingReportRepo) Trending(ctx context.Context) ([]models.Report, error) {
	r.gotCtx = ctx
	return []models.Report{}, nil
}

// Values stored on the Fiber user context by middleware (request and trace
// IDs, the server span) must reach the repository layer through the handlers.
func TestHandlersPropagateUserContext(t *testing.T) {
	db := setupHandlerTestDB(t)

	repo := &ctxCapturingReportRepo{}
	s := &Server{
		config:       &config.Config{Env: "test"},
		db:           db,
		reportRepo:   repo,
		featureFlags: featureflags.NewManager("trending_cache=off"),
	}
	s.notificationService = service.NewNotificationService(repository.NewNotificationRepository(db))
	s.reportService = service.NewReportService(repo, s.notificationService, s.featureFlags)
	s.userService = service.NewUserService(repository.NewUserRepository(db))
	s.analyticsService = service.NewAnalyticsService(repository.NewAnalyticsRepository(db))

	app := fiber.New()
	type ctxKey struct{}
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(context.WithValue(c.UserContext(), ctxKey{}, "propagated"))
		return c.Next()
	})
	s.SetupRoutes(app)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/trending", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.gotCtx)
	assert.Equal(t, "propagated", repo.gotCtx.Value(ctxKey{}))
}

// Readiness degrades but stays up when Redis is missing: the API serves every
// endpoint without it, so only a failing database makes the service not ready.
func TestReadinessCheck_DegradedWithoutRedis(t *testing.T) {
	t.Parallel()

	db := setupHandlerTestDB(t)
	app := newTestApp(t, db)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"])
	assert.Equal(t, "unavailable", body.Checks["redis"])
}
