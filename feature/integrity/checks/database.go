package checks

import (
	"fmt"
	"sync"

	"locale-manager/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DatabaseReport is the result of a schema check of a GORM model.
type DatabaseReport struct {
	Driver         string   `json:"driver"`
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}

// CheckDatabase verifies that the table of model has every column GORM expects.
func CheckDatabase(db *gorm.DB, model any) (*DatabaseReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	s, err := schema.Parse(model, &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model schema: %w", err)
	}

	report := &DatabaseReport{
		Driver:         db.Dialector.Name(),
		Table:          s.Table,
		Matched:        true,
		MissingColumns: []string{},
		Errors:         []string{},
	}

	columns, err := database.GetTableColumns(db, s.Table)
	if err != nil {
		report.Matched = false
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", s.Table, err))
		return report, nil
	}
	if len(columns) == 0 {
		report.Matched = false
		report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", s.Table))
		return report, nil
	}

	if missing := database.MissingColumns(columns, s.DBNames...); len(missing) > 0 {
		report.Matched = false
		report.MissingColumns = missing
	}
	return report, nil
}
