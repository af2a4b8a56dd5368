package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotelbooking/models"
)

// dryRunDB builds statements without a server; nothing is sent over the wire.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=hotel dbname=hotel sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func searchSQL(db *gorm.DB, text string, stars *int) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var hotels []models.Hotel
		return tx.Scopes(searchFilter(text, stars)).Order("created_at DESC").Find(&hotels)
	})
}

func TestSearchFilterSQL(t *testing.T) {
	db := dryRunDB(t)
	stars := 5

	tests := []struct {
		name  string
		text  string
		stars *int
		want  string
	}{
		{"text and stars", "Dubai", &stars,
			`WHERE (city LIKE '%Dubai%' OR country LIKE '%Dubai%' OR name LIKE '%Dubai%') AND stars = 5 ORDER BY created_at DESC`},
		{"text only", "Dubai", nil,
			`WHERE city LIKE '%Dubai%' OR country LIKE '%Dubai%' OR name LIKE '%Dubai%' ORDER BY created_at DESC`},
		{"stars only", "", &stars,
			`WHERE stars = 5 ORDER BY created_at DESC`},
		{"no filters", "", nil,
			`FROM "hotels" ORDER BY created_at DESC`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, searchSQL(db, tt.text, tt.stars), tt.want)
		})
	}
}
