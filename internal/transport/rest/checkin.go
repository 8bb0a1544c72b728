package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/checkin"
)

type checkInService interface {
	CheckIn(ctx context.Context, input checkin.CheckInInput) (*domain.CheckIn, error)
	UpdateNote(ctx context.Context, input checkin.UpdateNoteInput) (*domain.CheckIn, error)
	Delete(ctx context.Context, checkInID uuid.UUID) error
	History(ctx context.Context, input checkin.HistoryInput) ([]domain.CheckIn, error)
}

// CheckInHandler serves the check-in endpoints.
type CheckInHandler struct {
	svc checkInService
	log *slog.Logger
}

// NewCheckInHandler creates a CheckInHandler.
func NewCheckInHandler(svc checkInService, logger *slog.Logger) *CheckInHandler {
	return &CheckInHandler{svc: svc, log: logger.With("handler", "checkin")}
}

// Create handles POST /api/habits/{habitID}/check-ins.
func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	habitID, err := pathUUID(r, "habitID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req checkInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CheckIn(r.Context(), checkin.CheckInInput{
		HabitID: habitID,
		Date:    req.Date,
		Note:    req.Note,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCheckInResponse(created))
}

// List handles GET /api/habits/{habitID}/check-ins?from=&to=&limit=.
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	habitID, err := pathUUID(r, "habitID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	checkIns, err := h.svc.History(r.Context(), checkin.HistoryInput{
		HabitID: habitID,
		From:    queryString(r, "from"),
		To:      queryString(r, "to"),
		Limit:   limit,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := checkInListResponse{Items: make([]checkInResponse, 0, len(checkIns))}
	for i := range checkIns {
		resp.Items = append(resp.Items, toCheckInResponse(&checkIns[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateNote handles PATCH /api/check-ins/{checkInID}.
func (h *CheckInHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	checkInID, err := pathUUID(r, "checkInID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.UpdateNote(r.Context(), checkin.UpdateNoteInput{
		CheckInID: checkInID,
		Note:      req.Note,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckInResponse(updated))
}

// Delete handles DELETE /api/check-ins/{checkInID}.
func (h *CheckInHandler) Delete(w http.ResponseWriter, r *http.Request) {
	checkInID, err := pathUUID(r, "checkInID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), checkInID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
