package checkin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// UpdateNote replaces the note of a check-in. The date is immutable.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.CheckIn, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.checkIns.UpdateNote(ctx, userID, input.CheckInID, trimOrNil(input.Note))
	if err != nil {
		return nil, fmt.Errorf("update check-in note: %w", err)
	}

	s.log.InfoContext(ctx, "check-in note updated",
		slog.String("user_id", userID.String()),
		slog.String("check_in_id", input.CheckInID.String()),
		slog.Bool("cleared", updated.Note == nil),
	)

	return updated, nil
}

// Delete removes a check-in owned by the current user.
func (s *Service) Delete(ctx context.Context, checkInID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if checkInID == uuid.Nil {
		return domain.NewValidationError("check_in_id", "required")
	}

	if err := s.checkIns.Delete(ctx, userID, checkInID); err != nil {
		return fmt.Errorf("delete check-in: %w", err)
	}

	s.log.InfoContext(ctx, "check-in deleted",
		slog.String("user_id", userID.String()),
		slog.String("check_in_id", checkInID.String()),
	)

	return nil
}
