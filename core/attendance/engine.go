package attendance

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"attendance-manager/core/masterdata"

	"github.com/google/uuid"
)

// MergeResult is the outcome of one merge pass: the complete new ledger
// snapshot plus counters for the sync report.
type MergeResult struct {
	// Records is the full updated ledger, sorted by date then employee code.
	// Records not touched by any incoming event pass through unchanged.
	Records []Record

	// Applied is the number of events reconciled into the ledger.
	Applied int

	// Dropped is the number of malformed events discarded before merging.
	Dropped int
}

// Merge reconciles a batch of punch events into an existing ledger snapshot
// and returns the complete updated snapshot. It is total: malformed events
// are dropped and counted, unknown employee codes produce flagged
// placeholder records, and an empty effective input returns the ledger
// unchanged.
//
// Events are applied strictly in slice order. Check-in is the running
// minimum across all events for a key; check-out is the running maximum,
// guarded so it only ever holds a time strictly after the check-in as
// resolved at the moment that event is applied. Callers that need a stable
// outcome across repeated syncs must deliver events in a stable order; the
// sync orchestrator concatenates batches in source registration order.
func Merge(existing []Record, events []PunchEvent, roster *masterdata.Snapshot) MergeResult {
	if roster == nil {
		roster = masterdata.EmptySnapshot()
	}

	lookup := make(map[string]Record, len(existing)+len(events))
	for _, rec := range existing {
		lookup[rec.Key()] = rec
	}

	var applied, dropped int
	for _, event := range events {
		if err := ValidateEvent(event); err != nil {
			dropped++
			continue
		}

		threshold := roster.Threshold(event.EmployeeCode)

		rec, ok := lookup[event.Key()]
		if !ok {
			rec = Record{
				ID:           uuid.NewString(),
				EmployeeCode: event.EmployeeCode,
				EmployeeName: resolveName(roster, event.EmployeeCode),
				Date:         event.Date,
				CheckIn:      event.Time,
				CheckOut:     TimeNone,
				Source:       SourceFingerprint,
			}
		} else {
			// Running minimum check-in. Zero-padded "HH:MM" compares
			// lexicographically the same as numerically.
			if rec.CheckIn == TimeNone || event.Time < rec.CheckIn {
				rec.CheckIn = event.Time
			}

			// Guarded maximum check-out, evaluated against the check-in as
			// of this event.
			if rec.CheckOut == TimeNone {
				if event.Time > rec.CheckIn {
					rec.CheckOut = event.Time
				}
			} else {
				candidate := rec.CheckOut
				if event.Time > candidate {
					candidate = event.Time
				}
				if candidate > rec.CheckIn {
					rec.CheckOut = candidate
				}
			}
		}

		rec.Status = Classify(rec.CheckIn, threshold)
		rec.WorkHours = Hours(rec.CheckIn, rec.CheckOut)
		lookup[rec.Key()] = rec
		applied++
	}

	records := make([]Record, 0, len(lookup))
	for _, rec := range lookup {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].EmployeeCode < records[j].EmployeeCode
	})

	return MergeResult{Records: records, Applied: applied, Dropped: dropped}
}

// Classify derives the attendance status from a check-in time and a lateness
// threshold. It never returns StatusExcused; that value is reserved for
// manual edits.
func Classify(checkIn, threshold string) Status {
	if checkIn == TimeNone {
		return StatusAbsent
	}
	if checkIn > threshold {
		return StatusLate
	}
	return StatusPresent
}

// Hours computes worked hours from check-in and check-out, rounded to one
// decimal. It is zero whenever either side is the sentinel or the check-out
// does not come after the check-in.
func Hours(checkIn, checkOut string) float64 {
	if checkIn == TimeNone || checkOut == TimeNone || checkOut <= checkIn {
		return 0
	}
	mins := minutesOfDay(checkOut) - minutesOfDay(checkIn)
	return math.Round(float64(mins)/60*10) / 10
}

// resolveName returns the roster name for a code, or the unregistered
// placeholder so the punch is not silently lost.
func resolveName(roster *masterdata.Snapshot, code string) string {
	if emp, ok := roster.Employee(code); ok {
		return emp.Name
	}
	return fmt.Sprintf("unregistered (%s)", code)
}

// minutesOfDay converts a validated "HH:MM" string to minutes since
// midnight.
func minutesOfDay(hhmm string) int {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}
