package ledger

import (
	"context"
	"fmt"
	"strings"

	"attendance-manager/core/attendance"

	"gorm.io/gorm"
)

// recordRow is the persistence shape of an attendance record.
type recordRow struct {
	ID           string  `gorm:"column:id;primaryKey"`
	EmployeeCode string  `gorm:"column:employee_code;index:idx_code_date,unique"`
	EmployeeName string  `gorm:"column:employee_name"`
	Date         string  `gorm:"column:date;index:idx_code_date,unique;index:idx_date"`
	CheckIn      string  `gorm:"column:check_in"`
	CheckOut     string  `gorm:"column:check_out"`
	Status       string  `gorm:"column:status"`
	WorkHours    float64 `gorm:"column:work_hours"`
	Source       string  `gorm:"column:source"`
}

// TableName maps recordRow to the ledger table.
func (recordRow) TableName() string {
	return "attendance_records"
}

func toRow(rec attendance.Record) recordRow {
	return recordRow{
		ID:           rec.ID,
		EmployeeCode: rec.EmployeeCode,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date,
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
		Status:       string(rec.Status),
		WorkHours:    rec.WorkHours,
		Source:       string(rec.Source),
	}
}

func fromRow(row recordRow) attendance.Record {
	return attendance.Record{
		ID:           row.ID,
		EmployeeCode: row.EmployeeCode,
		EmployeeName: row.EmployeeName,
		Date:         row.Date,
		CheckIn:      row.CheckIn,
		CheckOut:     row.CheckOut,
		Status:       attendance.Status(row.Status),
		WorkHours:    row.WorkHours,
		Source:       attendance.RecordSource(row.Source),
	}
}

// GormStore is the database-backed ledger store. All mutations run inside
// transactions; the sync orchestrator additionally serializes merges behind
// its own writer lock.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a ledger store on an established connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the attendance_records table.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&recordRow{}); err != nil {
		return fmt.Errorf("failed to migrate attendance_records: %w", err)
	}
	return nil
}

// All returns the complete snapshot sorted by date then employee code.
func (s *GormStore) All(ctx context.Context) ([]attendance.Record, error) {
	var rows []recordRow
	err := s.db.WithContext(ctx).
		Order("date, employee_code").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, fromRow(row))
	}
	return records, nil
}

// UpsertAll replaces the snapshot wholesale inside one transaction.
func (s *GormStore) UpsertAll(ctx context.Context, records []attendance.Record) error {
	rows := make([]recordRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toRow(rec))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&recordRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace ledger snapshot: %w", err)
	}
	return nil
}

// DeleteByID removes the record with the given id. Absent ids are a no-op.
func (s *GormStore) DeleteByID(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&recordRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", id, err)
	}
	return nil
}

// DeleteByDate removes every record for the date and returns the count.
func (s *GormStore) DeleteByDate(ctx context.Context, date string) (int, error) {
	res := s.db.WithContext(ctx).Where("date = ?", date).Delete(&recordRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete records for %s: %w", date, res.Error)
	}
	return int(res.RowsAffected), nil
}

// likeEscaper neutralizes LIKE metacharacters so substring filters match
// them literally. The escape character is '!' because a backslash would need
// different quoting on mysql and sqlite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern builds a case-folded substring LIKE pattern for a filter
// value, matching MemoryStore's case-insensitive semantics.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// Query returns the records for a date that satisfy the filter. Substring
// filters translate to LIKE, exact filters to equality. Filter semantics are
// identical to MemoryStore: substrings are case-insensitive and LIKE
// metacharacters in the filter value match literally.
func (s *GormStore) Query(ctx context.Context, date string, filter Filter) ([]attendance.Record, error) {
	tx := s.db.WithContext(ctx).Where("date = ?", date)
	if filter.Code != "" {
		tx = tx.Where("LOWER(employee_code) LIKE ? ESCAPE '!'", likePattern(filter.Code))
	}
	if filter.Name != "" {
		tx = tx.Where("LOWER(employee_name) LIKE ? ESCAPE '!'", likePattern(filter.Name))
	}
	if filter.CheckIn != "" {
		tx = tx.Where("check_in = ?", filter.CheckIn)
	}
	if filter.CheckOut != "" {
		tx = tx.Where("check_out = ?", filter.CheckOut)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []recordRow
	if err := tx.Order("date, employee_code").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, fromRow(row))
	}
	return records, nil
}
