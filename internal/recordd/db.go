package recordd

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"projectflow/internal/record"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizeDSN accepts either a URL style DSN (postgres://...) or a lib/pq
// key=value list, trims quotes and whitespace, and ensures sslmode is set.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	if !kvPairRegex.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// Open connects to postgres when dsn is set, otherwise to a local sqlite
// file, and migrates the four record tables.
func Open(dsn, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(NormalizeDSN(dsn))
	} else {
		dialector = sqlite.Open(sqlitePath)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open record db: %w", err)
	}
	if err := db.AutoMigrate(&ClientRecord{}, &ProjectRecord{}, &TaskRecord{}, &InvoiceRecord{}); err != nil {
		return nil, fmt.Errorf("migrate record db: %w", err)
	}
	return db, nil
}

// Seed loads the demo dataset into any table that is still empty.
func Seed(db *gorm.DB) error {
	fx := record.NewFixtureStore(0)
	fx.SeedDemoData()
	ctx := context.Background()
	for table := range tableColumns {
		var count int64
		if err := db.Table(table).Count(&count).Error; err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
		if count > 0 {
			continue
		}
		rows, err := fx.FetchRecords(ctx, table, record.QueryParams{})
		if err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
		for _, rec := range rows {
			row := storedFields(table, rec)
			row["id"] = record.AsInt(rec["Id"])
			if err := db.Table(table).Create(row).Error; err != nil {
				return fmt.Errorf("seed %s: %w", table, err)
			}
		}
	}
	return nil
}
