package attendance

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation failures for incoming punch events. Merge drops offending
// events and counts them; nothing here ever reaches a caller as a merge
// error.
var (
	ErrEmptyEmployeeCode = errors.New("empty employee code")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTime       = errors.New("invalid time of day")
)

// timePattern matches zero-padded 24h "HH:MM". The zero-padding matters:
// the merge relies on lexicographic comparison of these strings.
var timePattern = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateEvent checks a punch event against the wire contract: non-blank
// employee code, "YYYY-MM-DD" date, zero-padded "HH:MM" time.
func ValidateEvent(e PunchEvent) error {
	if strings.TrimSpace(e.EmployeeCode) == "" {
		return ErrEmptyEmployeeCode
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	if !timePattern.MatchString(e.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidTime, e.Time)
	}
	return nil
}

// ValidClock reports whether s is a valid check-in/check-out value: either
// the TimeNone sentinel or a zero-padded "HH:MM".
func ValidClock(s string) bool {
	return s == TimeNone || timePattern.MatchString(s)
}

// ValidDate reports whether date is a well-formed "YYYY-MM-DD" calendar
// date. Handlers use it to reject malformed query parameters before touching
// the store.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
