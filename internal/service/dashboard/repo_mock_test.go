package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

var _ habitRepo = &habitRepoMock{}

type habitRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	CountHabitsFunc      func(ctx context.Context, userID uuid.UUID, activeOnly bool) (int, error)
	ListWithCategoryFunc func(ctx context.Context, userID uuid.UUID) ([]domain.HabitWithCategory, error)
	ListWithCheckInsFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HabitWithCheckIns, error)

	calls struct {
		CountHabits []struct {
			UserID     uuid.UUID
			ActiveOnly bool
		}
		ListWithCheckIns []struct {
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *habitRepoMock) GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	if mock.GetByIDFunc == nil {
		panic("habitRepoMock.GetByIDFunc: method is nil but habitRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, habitID)
}

func (mock *habitRepoMock) CountHabits(ctx context.Context, userID uuid.UUID, activeOnly bool) (int, error) {
	if mock.CountHabitsFunc == nil {
		panic("habitRepoMock.CountHabitsFunc: method is nil but habitRepo.CountHabits was just called")
	}
	mock.lock.Lock()
	mock.calls.CountHabits = append(mock.calls.CountHabits, struct {
		UserID     uuid.UUID
		ActiveOnly bool
	}{UserID: userID, ActiveOnly: activeOnly})
	mock.lock.Unlock()
	return mock.CountHabitsFunc(ctx, userID, activeOnly)
}

func (mock *habitRepoMock) CountHabitsCalls() []struct {
	UserID     uuid.UUID
	ActiveOnly bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountHabits
}

func (mock *habitRepoMock) ListWithCategory(ctx context.Context, userID uuid.UUID) ([]domain.HabitWithCategory, error) {
	if mock.ListWithCategoryFunc == nil {
		panic("habitRepoMock.ListWithCategoryFunc: method is nil but habitRepo.ListWithCategory was just called")
	}
	return mock.ListWithCategoryFunc(ctx, userID)
}

func (mock *habitRepoMock) ListWithCheckIns(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HabitWithCheckIns, error) {
	if mock.ListWithCheckInsFunc == nil {
		panic("habitRepoMock.ListWithCheckInsFunc: method is nil but habitRepo.ListWithCheckIns was just called")
	}
	mock.lock.Lock()
	mock.calls.ListWithCheckIns = append(mock.calls.ListWithCheckIns, struct {
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{UserID: userID, From: from, To: to})
	mock.lock.Unlock()
	return mock.ListWithCheckInsFunc(ctx, userID, from, to)
}

func (mock *habitRepoMock) ListWithCheckInsCalls() []struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListWithCheckIns
}

var _ checkInRepo = &checkInRepoMock{}

type checkInRepoMock struct {
	CountCheckInsFunc        func(ctx context.Context, userID uuid.UUID, since *time.Time) (int, error)
	ListCheckInDaysFunc      func(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	ListHabitCheckInDaysFunc func(ctx context.Context, userID, habitID uuid.UUID, since time.Time) ([]time.Time, error)

	calls struct {
		ListCheckInDays []struct {
			UserID uuid.UUID
			Since  time.Time
		}
		ListHabitCheckInDays []struct {
			UserID  uuid.UUID
			HabitID uuid.UUID
			Since   time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *checkInRepoMock) CountCheckIns(ctx context.Context, userID uuid.UUID, since *time.Time) (int, error) {
	if mock.CountCheckInsFunc == nil {
		panic("checkInRepoMock.CountCheckInsFunc: method is nil but checkInRepo.CountCheckIns was just called")
	}
	return mock.CountCheckInsFunc(ctx, userID, since)
}

func (mock *checkInRepoMock) ListCheckInDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.ListCheckInDaysFunc == nil {
		panic("checkInRepoMock.ListCheckInDaysFunc: method is nil but checkInRepo.ListCheckInDays was just called")
	}
	mock.lock.Lock()
	mock.calls.ListCheckInDays = append(mock.calls.ListCheckInDays, struct {
		UserID uuid.UUID
		Since  time.Time
	}{UserID: userID, Since: since})
	mock.lock.Unlock()
	return mock.ListCheckInDaysFunc(ctx, userID, since)
}

func (mock *checkInRepoMock) ListCheckInDaysCalls() []struct {
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListCheckInDays
}

func (mock *checkInRepoMock) ListHabitCheckInDays(ctx context.Context, userID, habitID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.ListHabitCheckInDaysFunc == nil {
		panic("checkInRepoMock.ListHabitCheckInDaysFunc: method is nil but checkInRepo.ListHabitCheckInDays was just called")
	}
	mock.lock.Lock()
	mock.calls.ListHabitCheckInDays = append(mock.calls.ListHabitCheckInDays, struct {
		UserID  uuid.UUID
		HabitID uuid.UUID
		Since   time.Time
	}{UserID: userID, HabitID: habitID, Since: since})
	mock.lock.Unlock()
	return mock.ListHabitCheckInDaysFunc(ctx, userID, habitID, since)
}

func (mock *checkInRepoMock) ListHabitCheckInDaysCalls() []struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	Since   time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListHabitCheckInDays
}
