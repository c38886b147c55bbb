package attendance

import (
	core "attendance-manager/core/attendance"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// newValidator builds the request validator with the clocktime rule used by
// import rows ("HH:MM" or the "-" sentinel).
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return core.ValidClock(fl.Field().String())
	})
	return v
}

// SyncRequest triggers a sync run for one date.
type SyncRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// ImportRow is an already-finalized attendance record supplied by an
// operator. Imports bypass the merge and classify logic entirely; the caller
// is responsible for consistency between the clock fields, status and hours.
type ImportRow struct {
	ID           string  `json:"id" validate:"omitempty,uuid4"`
	EmployeeCode string  `json:"employee_code" validate:"required"`
	EmployeeName string  `json:"employee_name" validate:"required"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	CheckIn      string  `json:"check_in" validate:"required,clocktime"`
	CheckOut     string  `json:"check_out" validate:"required,clocktime"`
	Status       string  `json:"status" validate:"required,oneof=present absent late excused"`
	WorkHours    float64 `json:"work_hours" validate:"gte=0"`
}

// toRecord converts a validated import row into a ledger record, assigning
// an id when the row carries none.
func (r ImportRow) toRecord() core.Record {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	return core.Record{
		ID:           id,
		EmployeeCode: r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Status:       core.Status(r.Status),
		WorkHours:    r.WorkHours,
		Source:       core.SourceManual,
	}
}
