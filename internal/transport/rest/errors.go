package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// writeServiceError translates a service error into a status code and a
// user-facing message. Anything unrecognised is logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		attrs := append([]slog.Attr{slog.String("error", err.Error())}, ctxutil.LogAttrs(r.Context())...)
		log.LogAttrs(r.Context(), level, "request failed", attrs...)
	}
	writeJSON(w, status, errorResponse{Error: body})
}

func classify(err error) (int, errorBody) {
	var (
		dateErr   *domain.DateError
		beforeErr *domain.BeforeStartError
		dupErr    *domain.DuplicateCheckInError
		valErr    *domain.ValidationError
	)

	switch {
	case errors.As(err, &dupErr):
		return http.StatusConflict, errorBody{
			Code:    "DUPLICATE_CHECK_IN",
			Message: fmt.Sprintf("habit already checked in on %s", dupErr.Date),
			Details: map[string]string{"date": dupErr.Date},
		}
	case errors.As(err, &beforeErr):
		return http.StatusBadRequest, errorBody{
			Code:    "BEFORE_HABIT_START",
			Message: fmt.Sprintf("check-in date is before the habit start date %s", beforeErr.StartDate),
			Details: map[string]string{"startDate": beforeErr.StartDate},
		}
	case errors.As(err, &dateErr):
		code, msg := "INVALID_DATE_FORMAT", "date must be formatted as YYYY-MM-DD"
		if errors.Is(dateErr.Kind, domain.ErrInvalidCalendarDate) {
			code, msg = "INVALID_CALENDAR_DATE", "date does not exist in the calendar"
		}
		return http.StatusBadRequest, errorBody{
			Code:    code,
			Message: msg,
			Details: map[string]string{"input": dateErr.Input},
		}
	case errors.Is(err, domain.ErrHabitInactive):
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "HABIT_INACTIVE",
			Message: "habit is inactive and does not accept check-ins",
		}
	case errors.As(err, &valErr):
		body := errorBody{Code: "VALIDATION", Message: "request is invalid"}
		for _, fe := range valErr.Errors {
			body.Fields = append(body.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		return http.StatusBadRequest, body
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorBody{Code: "VALIDATION", Message: "request is invalid"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "not found"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorBody{Code: "UNAUTHORIZED", Message: "authentication required"}
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorBody{Code: "CONFLICT", Message: "conflicting change"}
	default:
		return http.StatusInternalServerError, errorBody{Code: "INTERNAL", Message: "internal server error"}
	}
}
