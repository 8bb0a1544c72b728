package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type habitRepo interface {
	GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	CountHabits(ctx context.Context, userID uuid.UUID, activeOnly bool) (int, error)
	ListWithCategory(ctx context.Context, userID uuid.UUID) ([]domain.HabitWithCategory, error)
	ListWithCheckIns(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HabitWithCheckIns, error)
}

type checkInRepo interface {
	CountCheckIns(ctx context.Context, userID uuid.UUID, since *time.Time) (int, error)
	ListCheckInDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	ListHabitCheckInDays(ctx context.Context, userID, habitID uuid.UUID, since time.Time) ([]time.Time, error)
}

// Service loads raw rows for one user and runs the aggregation builders.
type Service struct {
	habits   habitRepo
	checkIns checkInRepo
	clock    clockwork.Clock
	policy   Policy
	log      *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	habits habitRepo,
	checkIns checkInRepo,
	policy Policy,
) *Service {
	return &Service{
		habits:   habits,
		checkIns: checkIns,
		clock:    clock,
		policy:   policy,
		log:      log.With("service", "dashboard"),
	}
}
