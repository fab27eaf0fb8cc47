// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"scamwatch/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumReports  int
	ShouldClean bool
	// DryRun logs what would be created without touching the database.
	DryRun bool
	// SkipBcrypt stores plaintext secrets for faster local seeding.
	SkipBcrypt bool
	// MaxDays bounds how far back generated created_at timestamps spread.
	MaxDays int
}

var scamTitleTemplates = map[models.ReportType][]string{
	models.ReportTypePhishing: {
		"Fake bank login page sent by SMS",
		"Parcel delivery phishing email",
		"Tax refund phishing site",
	},
	models.ReportTypeInvestment: {
		"Guaranteed 20 percent weekly returns fund",
		"Fake trading platform locked my withdrawal",
	},
	models.ReportTypeRomance: {
		"Dating app match asked for emergency money",
		"Long distance partner needed travel funds",
	},
	models.ReportTypeFakeStore: {
		"Online store never shipped my order",
		"Discount electronics shop vanished after payment",
	},
	models.ReportTypeTechSupport: {
		"Popup claimed my computer was infected",
		"Caller pretended to be Microsoft support",
	},
	models.ReportTypeLottery: {
		"Prize claim required an advance fee",
		"Foreign lottery win I never entered",
	},
	models.ReportTypeCryptocurrency: {
		"Fake exchange drained my wallet",
		"Celebrity giveaway doubled-your-coins scam",
	},
	models.ReportTypeEmployment: {
		"Work from home job asked for equipment deposit",
		"Recruiter wanted payment for background check",
	},
	models.ReportTypeOther: {
		"Charity collector with no registration",
		"Rental listing for an apartment that does not exist",
	},
}

var seedLocations = []string{
	"Berlin, Germany", "London, UK", "Austin, TX", "Toronto, Canada",
	"Sydney, Australia", "Amsterdam, Netherlands", "Lagos, Nigeria",
	"Mumbai, India", "São Paulo, Brazil", "Online",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d reports...", opts.NumUsers, opts.NumReports)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	reports, err := createReports(factory, users, opts.NumReports)
	if err != nil {
		return fmt.Errorf("failed to create reports: %w", err)
	}
	log.Printf("✓ %d reports created", len(reports))

	notified, err := createNotifications(factory, reports)
	if err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	log.Printf("✓ %d notifications created", notified)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE evidences, notifications, reports, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include some specific users for consistency if cleaning
	if count >= 2 {
		for _, name := range []string{"moderator", "test"} {
			name := name
			user, err := factory.CreateUser(func(u *models.User) {
				u.Name = name
				u.Email = fmt.Sprintf("%s@example.com", name)
			})
			if err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createReports(factory *Factory, users []*models.User, count int) ([]*models.Report, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	reports := make([]*models.Report, 0, count)

	for i := 0; i < count; i++ {
		var owner *models.User
		// Roughly one in five reports is anonymous
		if len(users) > 0 && r.Intn(5) != 0 {
			owner = users[r.Intn(len(users))]
		}

		report, err := factory.CreateReport(owner)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d reports...", i)
		}
	}

	return reports, nil
}

func createNotifications(factory *Factory, reports []*models.Report) (int, error) {
	created := 0
	for _, report := range reports {
		if report.UserID == nil {
			continue
		}
		if report.Status == models.ReportStatusPending {
			continue
		}
		if _, err := factory.CreateStatusNotification(report); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func randomTitle(r *rand.Rand, reportType models.ReportType) string {
	titles := scamTitleTemplates[reportType]
	if len(titles) == 0 {
		titles = scamTitleTemplates[models.ReportTypeOther]
	}
	return titles[r.Intn(len(titles))]
}
