package attendance

import (
	"testing"

	"attendance-manager/core/masterdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() *masterdata.Snapshot {
	return &masterdata.Snapshot{
		Employees: map[string]masterdata.Employee{
			"E001": {Code: "E001", Name: "Alice Tan"},
			"E002": {Code: "E002", Name: "Bob Lim", ShiftID: "night"},
			"E003": {Code: "E003", Name: "Carol Ng", ShiftID: "late-start"},
		},
		Shifts: map[string]masterdata.Shift{
			"late-start": {ID: "late-start", Name: "Late Start", StartTime: "09:30"},
			// "night" is deliberately absent from the catalog.
		},
	}
}

func findRecord(t *testing.T, records []Record, code, date string) Record {
	t.Helper()
	for _, rec := range records {
		if rec.EmployeeCode == code && rec.Date == date {
			return rec
		}
	}
	t.Fatalf("no record for %s on %s", code, date)
	return Record{}
}

func TestMerge_FirstPunchCreatesRecord(t *testing.T) {
	result := Merge(nil, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"},
	}, testRoster())

	require.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 0, result.Dropped)

	rec := result.Records[0]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Alice Tan", rec.EmployeeName)
	assert.Equal(t, "08:10", rec.CheckIn)
	assert.Equal(t, TimeNone, rec.CheckOut)
	assert.Equal(t, StatusPresent, rec.Status) // 08:10 <= 09:00
	assert.Equal(t, 0.0, rec.WorkHours)
	assert.Equal(t, SourceFingerprint, rec.Source)
}

func TestMerge_SecondPunchSetsCheckOut(t *testing.T) {
	first := Merge(nil, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"},
	}, testRoster())

	second := Merge(first.Records, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "16:05"},
	}, testRoster())

	require.Len(t, second.Records, 1)
	rec := second.Records[0]
	assert.Equal(t, "08:10", rec.CheckIn, "check-in stays at the minimum")
	assert.Equal(t, "16:05", rec.CheckOut)
	assert.Equal(t, StatusPresent, rec.Status)
	assert.Equal(t, 7.9, rec.WorkHours)
	assert.Equal(t, first.Records[0].ID, rec.ID, "id is stable across merges")
}

func TestMerge_UnregisteredEmployee(t *testing.T) {
	result := Merge(nil, []PunchEvent{
		{EmployeeCode: "Z999", Date: "2023-10-25", Time: "09:45"},
	}, testRoster())

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Contains(t, rec.EmployeeName, "unregistered")
	assert.Contains(t, rec.EmployeeName, "Z999")
	assert.Equal(t, StatusLate, rec.Status) // 09:45 > 09:00 default
}

func TestMerge_ShiftThreshold(t *testing.T) {
	// E003's shift starts 09:30.
	late := Merge(nil, []PunchEvent{
		{EmployeeCode: "E003", Date: "2023-10-25", Time: "09:40"},
	}, testRoster())
	assert.Equal(t, StatusLate, late.Records[0].Status)

	present := Merge(nil, []PunchEvent{
		{EmployeeCode: "E003", Date: "2023-10-25", Time: "09:20"},
	}, testRoster())
	assert.Equal(t, StatusPresent, present.Records[0].Status)
}

func TestMerge_UnknownShiftFallsBackToDefault(t *testing.T) {
	// E002 points at a shift missing from the catalog; 09:10 is late
	// against the 09:00 default.
	result := Merge(nil, []PunchEvent{
		{EmployeeCode: "E002", Date: "2023-10-25", Time: "09:10"},
	}, testRoster())

	assert.Equal(t, StatusLate, result.Records[0].Status)
}

func TestMerge_KeyUniqueness(t *testing.T) {
	events := []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "12:00"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "16:05"},
		{EmployeeCode: "E001", Date: "2023-10-26", Time: "08:30"},
		{EmployeeCode: "E003", Date: "2023-10-25", Time: "09:00"},
	}

	result := Merge(nil, events, testRoster())

	seen := map[string]bool{}
	for _, rec := range result.Records {
		key := rec.Key()
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
	assert.Len(t, result.Records, 3)
}

func TestMerge_SingleEventIdempotent(t *testing.T) {
	event := PunchEvent{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"}

	once := Merge(nil, []PunchEvent{event}, testRoster())
	twice := Merge(once.Records, []PunchEvent{event}, testRoster())

	assert.Equal(t, once.Records[0].CheckIn, twice.Records[0].CheckIn)
	// Re-merging the same time never flips it into a check-out: the guard
	// requires strictly greater than the check-in.
	assert.Equal(t, TimeNone, twice.Records[0].CheckOut)
}

func TestMerge_StatusIsPureFunctionOfCheckIn(t *testing.T) {
	roster := testRoster()
	events := []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "10:00"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:00"},
		{EmployeeCode: "E003", Date: "2023-10-25", Time: "09:40"},
		{EmployeeCode: "Z999", Date: "2023-10-25", Time: "07:55"},
	}

	result := Merge(nil, events, roster)
	for _, rec := range result.Records {
		assert.Equal(t, Classify(rec.CheckIn, roster.Threshold(rec.EmployeeCode)), rec.Status)
	}
}

func TestMerge_WorkHoursNonNegative(t *testing.T) {
	events := []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "17:00"},
		{EmployeeCode: "E003", Date: "2023-10-25", Time: "09:20"},
	}

	result := Merge(nil, events, testRoster())
	for _, rec := range result.Records {
		assert.GreaterOrEqual(t, rec.WorkHours, 0.0)
		if rec.CheckIn == TimeNone || rec.CheckOut == TimeNone {
			assert.Equal(t, 0.0, rec.WorkHours)
		}
	}
}

func TestMerge_EarlierPunchLowersCheckIn(t *testing.T) {
	roster := testRoster()

	first := Merge(nil, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "09:30"},
	}, roster)
	assert.Equal(t, StatusLate, first.Records[0].Status)

	second := Merge(first.Records, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:45"},
	}, roster)

	rec := second.Records[0]
	assert.Equal(t, "08:45", rec.CheckIn)
	// The event equals the new check-in, so the strictly-greater guard
	// keeps the check-out unset; the displaced 09:30 does not become one.
	assert.Equal(t, TimeNone, rec.CheckOut)
	assert.Equal(t, StatusPresent, rec.Status, "status follows the new minimum")
}

func TestMerge_CheckOutGuardIsSequential(t *testing.T) {
	roster := testRoster()

	// Same three punches, two delivery orders. The guard compares each
	// event against the check-in as of that event, so ordering is part of
	// the contract.
	ordered := Merge(nil, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:00"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "12:00"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "17:00"},
	}, roster)

	rec := ordered.Records[0]
	assert.Equal(t, "08:00", rec.CheckIn)
	assert.Equal(t, "17:00", rec.CheckOut)
	assert.Equal(t, 9.0, rec.WorkHours)
}

func TestMerge_MalformedEventsDropped(t *testing.T) {
	events := []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"},
		{EmployeeCode: "", Date: "2023-10-25", Time: "08:15"},
		{EmployeeCode: "E001", Date: "25-10-2023", Time: "08:20"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "8:20"},
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "24:00"},
	}

	result := Merge(nil, events, testRoster())

	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 4, result.Dropped)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "08:10", result.Records[0].CheckIn)
}

func TestMerge_AllMalformedLeavesLedgerUnchanged(t *testing.T) {
	existing := Merge(nil, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"},
	}, testRoster()).Records

	result := Merge(existing, []PunchEvent{
		{EmployeeCode: "", Date: "bad", Time: "bad"},
	}, testRoster())

	assert.Equal(t, 0, result.Applied)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, existing, result.Records)
}

func TestMerge_UntouchedRecordsPassThrough(t *testing.T) {
	roster := testRoster()
	existing := Merge(nil, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-24", Time: "08:00"},
		{EmployeeCode: "E003", Date: "2023-10-24", Time: "09:00"},
	}, roster).Records

	result := Merge(existing, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:30"},
	}, roster)

	require.Len(t, result.Records, 3)
	assert.Equal(t, findRecord(t, existing, "E003", "2023-10-24"), findRecord(t, result.Records, "E003", "2023-10-24"))
}

func TestMerge_NilRosterTreatsEveryoneUnregistered(t *testing.T) {
	result := Merge(nil, []PunchEvent{
		{EmployeeCode: "E001", Date: "2023-10-25", Time: "08:10"},
	}, nil)

	require.Len(t, result.Records, 1)
	assert.Contains(t, result.Records[0].EmployeeName, "unregistered")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   string
		threshold string
		want      Status
	}{
		{"No check-in", TimeNone, "09:00", StatusAbsent},
		{"On the threshold", "09:00", "09:00", StatusPresent},
		{"Before threshold", "08:59", "09:00", StatusPresent},
		{"After threshold", "09:01", "09:00", StatusLate},
		{"Late shift present", "09:20", "09:30", StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.checkIn, tt.threshold))
		})
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"Both sentinel", TimeNone, TimeNone, 0},
		{"No check-out", "08:10", TimeNone, 0},
		{"No check-in", TimeNone, "17:00", 0},
		{"Check-out equals check-in", "08:10", "08:10", 0},
		{"Check-out before check-in", "08:10", "08:00", 0},
		{"Full day", "08:10", "16:05", 7.9},
		{"Exact hours", "09:00", "17:00", 8},
		{"Rounded up", "09:00", "17:33", 8.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hours(tt.checkIn, tt.checkOut))
		})
	}
}
