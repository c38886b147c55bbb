package attendance

// TimeNone is the explicit "not yet recorded" marker for check-in/check-out
// times. It is distinct from an absent field: a record always carries both
// columns, and consumers render the sentinel as-is.
const TimeNone = "-"

// DefaultThreshold is the lateness threshold applied when an employee has no
// shift assignment or the assigned shift is unknown.
const DefaultThreshold = "09:00"

// Status classifies a day's attendance for one employee.
type Status string

const (
	// StatusPresent means the employee checked in at or before the threshold.
	StatusPresent Status = "present"
	// StatusAbsent means no check-in was recorded.
	StatusAbsent Status = "absent"
	// StatusLate means the employee checked in after the threshold.
	StatusLate Status = "late"
	// StatusExcused is only ever set through a manual edit; the merge path
	// never produces it.
	StatusExcused Status = "excused"
)

// RecordSource indicates how a ledger record was produced.
type RecordSource string

const (
	// SourceFingerprint marks records derived from terminal punch events.
	SourceFingerprint RecordSource = "fingerprint"
	// SourceManual marks records created or finalized by an operator
	// (manual edits, imports).
	SourceManual RecordSource = "manual"
)

// PunchEvent is a single badge scan reported by a punch source for one
// employee at one point in time. Events are ephemeral: they are consumed by
// one merge pass and never persisted on their own.
type PunchEvent struct {
	// EmployeeCode is the badge code as reported by the terminal.
	EmployeeCode string `json:"employeeCode"`

	// Date is the calendar date of the scan, "YYYY-MM-DD".
	Date string `json:"date"`

	// Time is the time of day of the scan, zero-padded 24h "HH:MM".
	Time string `json:"timestamp"`

	// DeviceID identifies the source terminal. Filled in by the sync
	// orchestrator, not by the wire payload.
	DeviceID string `json:"deviceId,omitempty"`
}

// Key returns the ledger key this event reconciles into.
func (e PunchEvent) Key() string {
	return RecordKey(e.EmployeeCode, e.Date)
}

// Record is the canonical per-employee-per-day attendance entry. At most one
// Record exists per (EmployeeCode, Date) pair; that pair is the ledger's
// primary key, while ID is the stable identity assigned on creation.
type Record struct {
	ID           string       `json:"id"`
	EmployeeCode string       `json:"employee_code"`
	EmployeeName string       `json:"employee_name"`
	Date         string       `json:"date"`
	CheckIn      string       `json:"check_in"`
	CheckOut     string       `json:"check_out"`
	Status       Status       `json:"status"`
	WorkHours    float64      `json:"work_hours"`
	Source       RecordSource `json:"source"`
}

// Key returns the record's (EmployeeCode, Date) ledger key.
func (r Record) Key() string {
	return RecordKey(r.EmployeeCode, r.Date)
}

// RecordKey builds the composite ledger key for an employee code and date.
func RecordKey(code, date string) string {
	return code + "|" + date
}
