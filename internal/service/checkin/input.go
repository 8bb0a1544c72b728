package checkin

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// CheckInInput holds the parameters for recording a check-in.
// Date is YYYY-MM-DD; nil means today.
type CheckInInput struct {
	HabitID uuid.UUID
	Date    *string
	Note    *string
}

// Validate checks the fields that do not depend on the habit.
// Date text is validated by Admit.
func (i CheckInInput) Validate() error {
	var errs []domain.FieldError
	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habit_id", Message: "required"})
	}
	errs = appendNoteErrors(errs, i.Note)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateNoteInput holds the parameters for changing a check-in note.
// A nil or blank Note clears it.
type UpdateNoteInput struct {
	CheckInID uuid.UUID
	Note      *string
}

func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.CheckInID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "check_in_id", Message: "required"})
	}
	errs = appendNoteErrors(errs, i.Note)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// HistoryInput holds the parameters for listing a habit's check-ins.
// From and To are optional YYYY-MM-DD bounds, both inclusive.
type HistoryInput struct {
	HabitID uuid.UUID
	From    *string
	To      *string
	Limit   int
}

func (i HistoryInput) validate(maxLimit int) error {
	var errs []domain.FieldError
	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habit_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", maxLimit)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendNoteErrors(errs []domain.FieldError, note *string) []domain.FieldError {
	if note == nil {
		return errs
	}
	if utf8.RuneCountInString(strings.TrimSpace(*note)) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: fmt.Sprintf("max %d characters", MaxNoteLength)})
	}
	return errs
}
