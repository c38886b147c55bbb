package masterdata

// Employee is a roster entry supplied by HR master data. The engine never
// writes this table.
type Employee struct {
	// Code is the unique badge code printed on the employee's card.
	Code string `gorm:"column:code;primaryKey" json:"code"`
	// Name is the display name, denormalized into ledger records.
	Name string `gorm:"column:name" json:"name"`
	// ShiftID is the assigned shift, empty when the employee has none.
	ShiftID string `gorm:"column:shift_id" json:"shift_id"`
}

// TableName maps Employee to the HR employees table.
func (Employee) TableName() string {
	return "employees"
}

// Shift is a catalog entry defining the lateness threshold for its
// employees.
type Shift struct {
	ID string `gorm:"column:id;primaryKey" json:"id"`
	// Name is the human-readable shift label.
	Name string `gorm:"column:name" json:"name"`
	// StartTime is the shift start, zero-padded 24h "HH:MM". A check-in
	// after this time is classified late.
	StartTime string `gorm:"column:start_time" json:"start_time"`
	// EndTime is informational only; it does not affect classification.
	EndTime string `gorm:"column:end_time" json:"end_time"`
}

// TableName maps Shift to the HR shifts table.
func (Shift) TableName() string {
	return "shifts"
}
