package checkin

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

var _ habitRepo = &habitRepoMock{}

type habitRepoMock struct {
	GetByIDFunc         func(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	GetByIDForShareFunc func(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)

	calls struct {
		GetByID []struct {
			UserID  uuid.UUID
			HabitID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *habitRepoMock) GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	if mock.GetByIDFunc == nil {
		panic("habitRepoMock.GetByIDFunc: method is nil but habitRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		HabitID uuid.UUID
	}{UserID: userID, HabitID: habitID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, habitID)
}

func (mock *habitRepoMock) GetByIDCalls() []struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *habitRepoMock) GetByIDForShare(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	if mock.GetByIDForShareFunc == nil {
		panic("habitRepoMock.GetByIDForShareFunc: method is nil but habitRepo.GetByIDForShare was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		HabitID uuid.UUID
	}{UserID: userID, HabitID: habitID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDForShareFunc(ctx, userID, habitID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}

// passthroughTx runs fn directly, standing in for a committed transaction.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

var _ checkInRepo = &checkInRepoMock{}

type checkInRepoMock struct {
	CreateFunc      func(ctx context.Context, checkIn *domain.CheckIn) (*domain.CheckIn, error)
	UpdateNoteFunc  func(ctx context.Context, userID, checkInID uuid.UUID, note *string) (*domain.CheckIn, error)
	DeleteFunc      func(ctx context.Context, userID, checkInID uuid.UUID) error
	ListByHabitFunc func(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) ([]domain.CheckIn, error)

	calls struct {
		Create []struct {
			CheckIn *domain.CheckIn
		}
		UpdateNote []struct {
			UserID    uuid.UUID
			CheckInID uuid.UUID
			Note      *string
		}
		Delete []struct {
			UserID    uuid.UUID
			CheckInID uuid.UUID
		}
		ListByHabit []struct {
			UserID uuid.UUID
			Filter domain.CheckInFilter
		}
	}
	lock sync.RWMutex
}

func (mock *checkInRepoMock) Create(ctx context.Context, checkIn *domain.CheckIn) (*domain.CheckIn, error) {
	if mock.CreateFunc == nil {
		panic("checkInRepoMock.CreateFunc: method is nil but checkInRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ CheckIn *domain.CheckIn }{CheckIn: checkIn})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, checkIn)
}

func (mock *checkInRepoMock) CreateCalls() []struct{ CheckIn *domain.CheckIn } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *checkInRepoMock) UpdateNote(ctx context.Context, userID, checkInID uuid.UUID, note *string) (*domain.CheckIn, error) {
	if mock.UpdateNoteFunc == nil {
		panic("checkInRepoMock.UpdateNoteFunc: method is nil but checkInRepo.UpdateNote was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, struct {
		UserID    uuid.UUID
		CheckInID uuid.UUID
		Note      *string
	}{UserID: userID, CheckInID: checkInID, Note: note})
	mock.lock.Unlock()
	return mock.UpdateNoteFunc(ctx, userID, checkInID, note)
}

func (mock *checkInRepoMock) UpdateNoteCalls() []struct {
	UserID    uuid.UUID
	CheckInID uuid.UUID
	Note      *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateNote
}

func (mock *checkInRepoMock) Delete(ctx context.Context, userID, checkInID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("checkInRepoMock.DeleteFunc: method is nil but checkInRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID    uuid.UUID
		CheckInID uuid.UUID
	}{UserID: userID, CheckInID: checkInID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, checkInID)
}

func (mock *checkInRepoMock) DeleteCalls() []struct {
	UserID    uuid.UUID
	CheckInID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *checkInRepoMock) ListByHabit(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	if mock.ListByHabitFunc == nil {
		panic("checkInRepoMock.ListByHabitFunc: method is nil but checkInRepo.ListByHabit was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByHabit = append(mock.calls.ListByHabit, struct {
		UserID uuid.UUID
		Filter domain.CheckInFilter
	}{UserID: userID, Filter: filter})
	mock.lock.Unlock()
	return mock.ListByHabitFunc(ctx, userID, filter)
}

func (mock *checkInRepoMock) ListByHabitCalls() []struct {
	UserID uuid.UUID
	Filter domain.CheckInFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByHabit
}
