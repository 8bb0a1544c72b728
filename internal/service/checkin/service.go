package checkin

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

const (
	DefaultHistoryLimit = 100
	MaxNoteLength       = 1000
)

type habitRepo interface {
	GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	// GetByIDForShare locks the habit row until the surrounding transaction
	// ends, so a concurrent deactivation cannot slip past admission.
	GetByIDForShare(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
}

type checkInRepo interface {
	Create(ctx context.Context, checkIn *domain.CheckIn) (*domain.CheckIn, error)
	UpdateNote(ctx context.Context, userID, checkInID uuid.UUID, note *string) (*domain.CheckIn, error)
	Delete(ctx context.Context, userID, checkInID uuid.UUID) error
	ListByHabit(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) ([]domain.CheckIn, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the check-in write path and history reads.
type Service struct {
	habits          habitRepo
	checkIns        checkInRepo
	tx              txManager
	clock           clockwork.Clock
	log             *slog.Logger
	historyMaxLimit int
}

// NewService creates a new check-in service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	habits habitRepo,
	checkIns checkInRepo,
	tx txManager,
	historyMaxLimit int,
) *Service {
	return &Service{
		habits:          habits,
		checkIns:        checkIns,
		tx:              tx,
		clock:           clock,
		log:             log.With("service", "checkin"),
		historyMaxLimit: historyMaxLimit,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
