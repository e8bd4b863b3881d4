package leaderboard

type TaskKind string

const (
	TaskSmall   TaskKind = "small"
	TaskRegular TaskKind = "regular"
	TaskBig     TaskKind = "big"
)

// ValidTaskKind reports whether k is a known task kind.
func ValidTaskKind(k TaskKind) bool {
	return k == TaskSmall || k == TaskRegular || k == TaskBig
}

// Points per completed task of each kind.
const (
	smallTaskPoints   = 1
	regularTaskPoints = 2
	bigTaskPoints     = 3
)

// Entry is one employee's running score. TotalPoints is never stored
// independently: Recompute derives it from the four counters after every
// mutation.
type Entry struct {
	Email            string
	Name             string
	TotalPoints      int
	AttendancePoints int
	SmallTasks       int
	RegularTasks     int
	BigTasks         int
}

// Recompute rederives the total from the counters.
func (e *Entry) Recompute() {
	e.TotalPoints = e.AttendancePoints +
		e.SmallTasks*smallTaskPoints +
		e.RegularTasks*regularTaskPoints +
		e.BigTasks*bigTaskPoints
}
