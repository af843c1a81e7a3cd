package service

import (
	"context"
	"fmt"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/domain/results/repository"
)

// ResultService для работы с результатами сдач
type ResultService struct {
	resultRepo *repository.ResultRepository
}

// NewResultService создает новый экземпляр ResultService
func NewResultService(resultRepo *repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// Create сохраняет результат сдачи. Повторная сдача возвращает
// model.ErrDuplicateResult, первый результат остается нетронутым.
func (s *ResultService) Create(ctx context.Context, result model.Result) error {
	if err := s.resultRepo.CreateResult(ctx, result); err != nil {
		if err == model.ErrDuplicateResult {
			return err
		}
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// Exists проверяет, сдавал ли студент этот тест
func (s *ResultService) Exists(ctx context.Context, testID int, userID int64) (bool, error) {
	exists, err := s.resultRepo.Exists(ctx, testID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check result: %w", err)
	}
	return exists, nil
}

// ListByTest возвращает результаты теста вместе с именами студентов
func (s *ResultService) ListByTest(ctx context.Context, testID int, order repository.Order) ([]model.ResultWithUser, error) {
	results, err := s.resultRepo.GetResultsWithUsers(ctx, testID, order)
	if err != nil {
		return nil, fmt.Errorf("failed to get test results: %w", err)
	}
	return results, nil
}

// ListByUser возвращает результаты студента вместе с названиями тестов
func (s *ResultService) ListByUser(ctx context.Context, userID int64) ([]model.ResultWithTest, error) {
	results, err := s.resultRepo.GetResultsWithTests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user results: %w", err)
	}
	return results, nil
}

// CountByTest возвращает количество сдач теста
func (s *ResultService) CountByTest(ctx context.Context, testID int) (int, error) {
	count, err := s.resultRepo.CountByTest(ctx, testID)
	if err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return count, nil
}
