package http

import (
	"encoding/json"
	"net/http"

	"github.com/workholic/attendance-backend-go/internal/domain/leaderboard"
	"github.com/workholic/attendance-backend-go/internal/handler/http/response"
	leaderboardService "github.com/workholic/attendance-backend-go/internal/service/leaderboard"
)

type LeaderboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpdateTasks(w http.ResponseWriter, r *http.Request)
}

type leaderboardHandlerImpl struct {
	leaderboardService leaderboardService.LeaderboardService
}

func NewLeaderboardHandler(svc leaderboardService.LeaderboardService) LeaderboardHandler {
	return &leaderboardHandlerImpl{leaderboardService: svc}
}

// Get implements LeaderboardHandler.
func (h *leaderboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaderboardService.Leaderboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateTasks implements LeaderboardHandler.
func (h *leaderboardHandlerImpl) UpdateTasks(w http.ResponseWriter, r *http.Request) {
	var req leaderboard.UpdateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaderboardService.UpdateTasks(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tasks updated", nil)
}
