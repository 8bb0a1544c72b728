package checkin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// CheckIn records a completion of the habit for one calendar day.
//
// The habit row stays share-locked while the check-in is inserted. A unique
// violation from storage means another request already recorded the same
// day and is reported as *domain.DuplicateCheckInError.
func (s *Service) CheckIn(ctx context.Context, input CheckInInput) (*domain.CheckIn, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()

	var (
		created *domain.CheckIn
		day     time.Time
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		habit, err := s.habits.GetByIDForShare(txCtx, userID, input.HabitID)
		if err != nil {
			return fmt.Errorf("get habit: %w", err)
		}

		day, err = Admit(*habit, input.Date, now)
		if err != nil {
			return err
		}

		created, err = s.checkIns.Create(txCtx, &domain.CheckIn{
			ID:        uuid.New(),
			HabitID:   habit.ID,
			UserID:    userID,
			Date:      day,
			Note:      trimOrNil(input.Note),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return &domain.DuplicateCheckInError{Date: calendar.Format(day)}
			}
			return fmt.Errorf("create check-in: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "check-in recorded",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", created.HabitID.String()),
		slog.String("check_in_id", created.ID.String()),
		slog.String("date", calendar.Format(day)),
	)

	return created, nil
}
