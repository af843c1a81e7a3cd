package service

import (
	"context"
	"fmt"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
)

// TestStore — операции хранилища тестов, нужные сервису.
type TestStore interface {
	CreateTest(ctx context.Context, test model.Test) (int, error)
	GetTestByID(ctx context.Context, id int) (*model.Test, error)
	UpdateTitle(ctx context.Context, id int, title string) error
	UpdateAnswers(ctx context.Context, id int, answers []string) error
	UpdateDeadline(ctx context.Context, id int, deadline time.Time) error
	DeleteTest(ctx context.Context, id int) error
	GetTestsByOwner(ctx context.Context, ownerID int64) ([]model.Test, error)
	GetActiveTests(ctx context.Context, now time.Time) ([]model.Test, error)
}

// ResultStore — удаление результатов при каскадном удалении теста.
type ResultStore interface {
	DeleteResultsByTest(ctx context.Context, testID int) error
}

// TestService для работы с тестами
type TestService struct {
	testRepo   TestStore
	resultRepo ResultStore
}

// NewTestService создает новый экземпляр TestService
func NewTestService(testRepo TestStore, resultRepo ResultStore) *TestService {
	return &TestService{
		testRepo:   testRepo,
		resultRepo: resultRepo,
	}
}

// Create сохраняет новый тест и возвращает его ID
func (s *TestService) Create(ctx context.Context, test model.Test) (int, error) {
	testID, err := s.testRepo.CreateTest(ctx, test)
	if err != nil {
		return 0, fmt.Errorf("failed to create test: %w", err)
	}
	return testID, nil
}

// GetByID возвращает тест по ID или nil, если его нет
func (s *TestService) GetByID(ctx context.Context, id int) (*model.Test, error) {
	test, err := s.testRepo.GetTestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return test, nil
}

// Update применяет одну правку к тесту. В update должно быть заполнено
// ровно одно поле, остальные поля теста остаются нетронутыми.
func (s *TestService) Update(ctx context.Context, id int, update model.TestUpdate) error {
	var err error
	switch {
	case update.Title != nil:
		err = s.testRepo.UpdateTitle(ctx, id, *update.Title)
	case update.Answers != nil:
		err = s.testRepo.UpdateAnswers(ctx, id, update.Answers)
	case update.Deadline != nil:
		err = s.testRepo.UpdateDeadline(ctx, id, *update.Deadline)
	default:
		return fmt.Errorf("empty test update")
	}
	if err != nil {
		if err == model.ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to update test: %w", err)
	}
	return nil
}

// Delete удаляет тест вместе с его результатами. Сначала удаляется сам
// тест, затем результаты, чтобы после исчезновения теста новые сдачи
// не создавали осиротевших строк.
func (s *TestService) Delete(ctx context.Context, id int) error {
	if err := s.testRepo.DeleteTest(ctx, id); err != nil {
		if err == model.ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete test: %w", err)
	}
	if err := s.resultRepo.DeleteResultsByTest(ctx, id); err != nil {
		return fmt.Errorf("failed to delete test results: %w", err)
	}
	return nil
}

// ListByOwner возвращает тесты преподавателя
func (s *TestService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Test, error) {
	tests, err := s.testRepo.GetTestsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tests by owner: %w", err)
	}
	return tests, nil
}

// ListActive возвращает тесты с неистёкшим сроком сдачи
func (s *TestService) ListActive(ctx context.Context) ([]model.Test, error) {
	tests, err := s.testRepo.GetActiveTests(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get active tests: %w", err)
	}
	return tests, nil
}
