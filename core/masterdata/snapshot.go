package masterdata

// DefaultThreshold is the lateness threshold used when no shift resolves for
// an employee. Kept in sync with the engine's default.
const DefaultThreshold = "09:00"

// Snapshot is an immutable point-in-time view of the roster and shift
// catalog, indexed for merge lookups. A merge pass holds exactly one
// snapshot; refreshes produce a new one.
type Snapshot struct {
	// Employees is the roster indexed by badge code.
	Employees map[string]Employee
	// Shifts is the shift catalog indexed by shift id.
	Shifts map[string]Shift
}

// EmptySnapshot returns a snapshot with no employees or shifts. Every lookup
// falls back to unregistered/default-threshold semantics.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Employees: map[string]Employee{},
		Shifts:    map[string]Shift{},
	}
}

// Employee looks up a roster entry by badge code.
func (s *Snapshot) Employee(code string) (Employee, bool) {
	emp, ok := s.Employees[code]
	return emp, ok
}

// Threshold resolves the lateness threshold for an employee code. It returns
// the start time of the employee's shift, or DefaultThreshold when the
// employee is unknown, has no shift, or the shift id does not resolve.
func (s *Snapshot) Threshold(code string) string {
	emp, ok := s.Employees[code]
	if !ok || emp.ShiftID == "" {
		return DefaultThreshold
	}
	shift, ok := s.Shifts[emp.ShiftID]
	if !ok || shift.StartTime == "" {
		return DefaultThreshold
	}
	return shift.StartTime
}
