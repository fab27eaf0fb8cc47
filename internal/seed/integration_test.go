//go:build integration

package seed

import (
	"net/url"
	"os"
	"strings"
	"testing"

	"scamwatch/internal/config"
	"scamwatch/internal/database"
	"scamwatch/internal/models"
)

func parseDatabaseURLToConfig(dsn string) (*config.Config, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	password := ""
	if u.User != nil {
		password, _ = u.User.Password()
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	cfg := &config.Config{
		DBHost:     u.Hostname(),
		DBPort:     port,
		DBUser:     u.User.Username(),
		DBPassword: password,
		DBName:     strings.TrimPrefix(u.Path, "/"),
		DBSSLMode:  "disable",
		Env:        "test",
	}
	return cfg, nil
}

func TestIntegration_SeedAgainstPostgres(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration seed test")
	}
	cfg, err := parseDatabaseURLToConfig(dsn)
	if err != nil {
		t.Fatalf("failed parse dsn: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}

	if err := Seed(db, Options{NumUsers: 10, NumReports: 50, ShouldClean: true, SkipBcrypt: true, MaxDays: 30}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var cnt int64
	if err := db.Model(&models.Report{}).Count(&cnt).Error; err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if cnt == 0 {
		t.Fatalf("expected seeded reports, got 0")
	}

	var evidence int64
	if err := db.Model(&models.Evidence{}).Count(&evidence).Error; err != nil {
		t.Fatalf("evidence count failed: %v", err)
	}
	if evidence == 0 {
		t.Fatalf("expected seeded evidence rows, got 0")
	}
}
