package leaderboard

import (
	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
)

// Attendance point deltas per status, applied once per clock-out and
// never recalculated from history.
var attendancePoints = map[attendance.Status]int{
	attendance.StatusFullDay: 2,
	attendance.StatusHalfDay: 1,
	attendance.StatusAbsent:  -1,
}

// AttendancePointsFor returns the scoring delta for a status; unknown
// statuses score zero.
func AttendancePointsFor(status attendance.Status) int {
	return attendancePoints[status]
}

// Upsert finds the entry for email, lazily creating one with the given
// display name when missing. It returns the (possibly grown) slice and a
// pointer into it.
func Upsert(entries []Entry, email, name string) ([]Entry, *Entry) {
	for i := range entries {
		if entries[i].Email == email {
			return entries, &entries[i]
		}
	}
	entries = append(entries, Entry{Email: email, Name: name})
	return entries, &entries[len(entries)-1]
}

// ApplyAttendance adds the status delta to the employee's attendance
// points and rederives the total.
func ApplyAttendance(entries []Entry, email, name string, status attendance.Status) []Entry {
	entries, entry := Upsert(entries, email, name)
	entry.AttendancePoints += AttendancePointsFor(status)
	entry.Recompute()
	return entries
}

// ApplyTaskDelta adds delta to the counter for the given task kind. The
// counter is clamped at zero; the total is rederived from the clamped
// value.
func ApplyTaskDelta(entries []Entry, email, name string, kind TaskKind, delta int) []Entry {
	entries, entry := Upsert(entries, email, name)

	counter := entry.counterFor(kind)
	if counter != nil {
		*counter += delta
		if *counter < 0 {
			*counter = 0
		}
		entry.Recompute()
	}
	return entries
}

func (e *Entry) counterFor(kind TaskKind) *int {
	switch kind {
	case TaskSmall:
		return &e.SmallTasks
	case TaskRegular:
		return &e.RegularTasks
	case TaskBig:
		return &e.BigTasks
	}
	return nil
}
