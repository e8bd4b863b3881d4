package leaderboard

import (
	"github.com/workholic/attendance-backend-go/internal/pkg/validator"
)

type UpdateTasksRequest struct {
	Email    string `json:"email"`
	TaskType string `json:"taskType"`
	Count    int    `json:"count"`
}

func (r *UpdateTasksRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if !ValidTaskKind(TaskKind(r.TaskType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "taskType",
			Message: "taskType must be one of: small, regular, big",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RankedEntry struct {
	Rank             int    `json:"rank"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	TotalPoints      int    `json:"totalPoints"`
	AttendancePoints int    `json:"attendancePoints"`
	SmallTasks       int    `json:"smallTasks"`
	RegularTasks     int    `json:"regularTasks"`
	BigTasks         int    `json:"bigTasks"`
}

type LeaderboardResponse struct {
	Leaderboard []RankedEntry `json:"leaderboard"`
	UserRank    *int          `json:"userRank"`
}
