package leaderboard

import (
	"context"
	"fmt"

	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/domain/leaderboard"
	"github.com/workholic/attendance-backend-go/internal/pkg/jwt"
	"github.com/workholic/attendance-backend-go/internal/store"
)

type LeaderboardService interface {
	// Leaderboard returns the top entries plus, for employee callers
	// ranked below the cutoff, their own rank.
	Leaderboard(ctx context.Context) (leaderboard.LeaderboardResponse, error)

	// UpdateTasks applies an admin task-count adjustment for an
	// employee; counters never go below zero.
	UpdateTasks(ctx context.Context, req leaderboard.UpdateTasksRequest) error
}

type LeaderboardServiceImpl struct {
	store store.Store
}

func NewLeaderboardService(st store.Store) LeaderboardService {
	return &LeaderboardServiceImpl{store: st}
}

// Leaderboard implements LeaderboardService.
func (l *LeaderboardServiceImpl) Leaderboard(ctx context.Context) (leaderboard.LeaderboardResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return leaderboard.LeaderboardResponse{}, err
	}

	recs, err := l.store.LoadAll(ctx)
	if err != nil {
		return leaderboard.LeaderboardResponse{}, fmt.Errorf("failed to load records: %w", err)
	}

	requester := ""
	if identity.Role == string(employee.RoleEmployee) {
		requester = identity.Email
	}
	top, userRank := leaderboard.Top(recs.Leaderboard, requester)

	resp := leaderboard.LeaderboardResponse{
		Leaderboard: make([]leaderboard.RankedEntry, 0, len(top)),
		UserRank:    userRank,
	}
	for _, r := range top {
		resp.Leaderboard = append(resp.Leaderboard, leaderboard.RankedEntry{
			Rank:             r.Rank,
			Email:            r.Email,
			Name:             r.Name,
			TotalPoints:      r.TotalPoints,
			AttendancePoints: r.AttendancePoints,
			SmallTasks:       r.SmallTasks,
			RegularTasks:     r.RegularTasks,
			BigTasks:         r.BigTasks,
		})
	}
	return resp, nil
}

// UpdateTasks implements LeaderboardService.
func (l *LeaderboardServiceImpl) UpdateTasks(ctx context.Context, req leaderboard.UpdateTasksRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	recs, err := l.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	recs.Leaderboard = leaderboard.ApplyTaskDelta(
		recs.Leaderboard,
		req.Email,
		recs.DisplayName(req.Email),
		leaderboard.TaskKind(req.TaskType),
		req.Count,
	)

	if err := l.store.SaveAll(ctx, recs); err != nil {
		return fmt.Errorf("failed to save task update: %w", err)
	}
	return nil
}
