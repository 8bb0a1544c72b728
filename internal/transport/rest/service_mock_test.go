package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/checkin"
)

var _ checkInService = &checkInServiceMock{}

type checkInServiceMock struct {
	CheckInFunc    func(ctx context.Context, input checkin.CheckInInput) (*domain.CheckIn, error)
	UpdateNoteFunc func(ctx context.Context, input checkin.UpdateNoteInput) (*domain.CheckIn, error)
	DeleteFunc     func(ctx context.Context, checkInID uuid.UUID) error
	HistoryFunc    func(ctx context.Context, input checkin.HistoryInput) ([]domain.CheckIn, error)

	calls struct {
		CheckIn    []checkin.CheckInInput
		UpdateNote []checkin.UpdateNoteInput
		Delete     []uuid.UUID
		History    []checkin.HistoryInput
	}
	lock sync.RWMutex
}

func (mock *checkInServiceMock) CheckIn(ctx context.Context, input checkin.CheckInInput) (*domain.CheckIn, error) {
	if mock.CheckInFunc == nil {
		panic("checkInServiceMock.CheckInFunc: method is nil but checkInService.CheckIn was just called")
	}
	mock.lock.Lock()
	mock.calls.CheckIn = append(mock.calls.CheckIn, input)
	mock.lock.Unlock()
	return mock.CheckInFunc(ctx, input)
}

func (mock *checkInServiceMock) CheckInCalls() []checkin.CheckInInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CheckIn
}

func (mock *checkInServiceMock) UpdateNote(ctx context.Context, input checkin.UpdateNoteInput) (*domain.CheckIn, error) {
	if mock.UpdateNoteFunc == nil {
		panic("checkInServiceMock.UpdateNoteFunc: method is nil but checkInService.UpdateNote was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, input)
	mock.lock.Unlock()
	return mock.UpdateNoteFunc(ctx, input)
}

func (mock *checkInServiceMock) UpdateNoteCalls() []checkin.UpdateNoteInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateNote
}

func (mock *checkInServiceMock) Delete(ctx context.Context, checkInID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("checkInServiceMock.DeleteFunc: method is nil but checkInService.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, checkInID)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, checkInID)
}

func (mock *checkInServiceMock) DeleteCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *checkInServiceMock) History(ctx context.Context, input checkin.HistoryInput) ([]domain.CheckIn, error) {
	if mock.HistoryFunc == nil {
		panic("checkInServiceMock.HistoryFunc: method is nil but checkInService.History was just called")
	}
	mock.lock.Lock()
	mock.calls.History = append(mock.calls.History, input)
	mock.lock.Unlock()
	return mock.HistoryFunc(ctx, input)
}

func (mock *checkInServiceMock) HistoryCalls() []checkin.HistoryInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.History
}

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	SummaryFunc     func(ctx context.Context) (domain.Summary, error)
	TodayFunc       func(ctx context.Context) ([]domain.TodayHabit, error)
	StatisticsFunc  func(ctx context.Context) (domain.Statistics, error)
	HabitStreakFunc func(ctx context.Context, habitID uuid.UUID) (domain.HabitStreak, error)
}

func (mock *dashboardServiceMock) Summary(ctx context.Context) (domain.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("dashboardServiceMock.SummaryFunc: method is nil but dashboardService.Summary was just called")
	}
	return mock.SummaryFunc(ctx)
}

func (mock *dashboardServiceMock) Today(ctx context.Context) ([]domain.TodayHabit, error) {
	if mock.TodayFunc == nil {
		panic("dashboardServiceMock.TodayFunc: method is nil but dashboardService.Today was just called")
	}
	return mock.TodayFunc(ctx)
}

func (mock *dashboardServiceMock) Statistics(ctx context.Context) (domain.Statistics, error) {
	if mock.StatisticsFunc == nil {
		panic("dashboardServiceMock.StatisticsFunc: method is nil but dashboardService.Statistics was just called")
	}
	return mock.StatisticsFunc(ctx)
}

func (mock *dashboardServiceMock) HabitStreak(ctx context.Context, habitID uuid.UUID) (domain.HabitStreak, error) {
	if mock.HabitStreakFunc == nil {
		panic("dashboardServiceMock.HabitStreakFunc: method is nil but dashboardService.HabitStreak was just called")
	}
	return mock.HabitStreakFunc(ctx, habitID)
}
