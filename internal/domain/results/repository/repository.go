package repository

import (
	"context"
	"fmt"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Order определяет порядок выдачи результатов теста.
type Order int

const (
	// ByScoreDesc — от лучшего балла к худшему.
	ByScoreDesc Order = iota
	// BySubmittedDesc — от свежих сдач к старым.
	BySubmittedDesc
)

// ResultRepository — доступ к результатам тестов в PostgreSQL.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository создает новый экземпляр ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// CreateResult сохраняет результат сдачи. Повторная сдача того же теста
// тем же студентом отклоняется (уникальность по паре test_id, user_id).
func (r *ResultRepository) CreateResult(ctx context.Context, result model.Result) error {
	ct, err := r.db.Exec(ctx, `
		INSERT INTO results (test_id, user_id, answers, score, correct_count, wrong_count, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (test_id, user_id) DO NOTHING
	`, result.TestID, result.UserID, result.Answers, result.Score,
		result.CorrectCount, result.WrongCount)
	if err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrDuplicateResult
	}
	return nil
}

// Exists проверяет, сдавал ли студент этот тест.
func (r *ResultRepository) Exists(ctx context.Context, testID int, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM results WHERE test_id = $1 AND user_id = $2)
	`, testID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check result existence: %w", err)
	}
	return exists, nil
}

// GetResultsWithUsers возвращает результаты теста вместе с именами студентов.
func (r *ResultRepository) GetResultsWithUsers(ctx context.Context, testID int, order Order) ([]model.ResultWithUser, error) {
	orderBy := "r.score DESC, r.id"
	if order == BySubmittedDesc {
		orderBy = "r.submitted_at DESC, r.id"
	}

	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.test_id, r.user_id, r.answers, r.score,
		       r.correct_count, r.wrong_count, r.submitted_at,
		       u.first_name, u.last_name
		FROM results r
		JOIN users u ON u.telegram_id = r.user_id
		WHERE r.test_id = $1
		ORDER BY `+orderBy, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []model.ResultWithUser
	for rows.Next() {
		var res model.ResultWithUser
		if err := rows.Scan(
			&res.ID, &res.TestID, &res.UserID, &res.Answers, &res.Score,
			&res.CorrectCount, &res.WrongCount, &res.SubmittedAt,
			&res.FirstName, &res.LastName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return results, nil
}

// GetResultsWithTests возвращает результаты студента вместе с названиями тестов,
// свежие первыми.
func (r *ResultRepository) GetResultsWithTests(ctx context.Context, userID int64) ([]model.ResultWithTest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.test_id, r.user_id, r.answers, r.score,
		       r.correct_count, r.wrong_count, r.submitted_at,
		       t.title
		FROM results r
		JOIN tests t ON t.id = r.test_id
		WHERE r.user_id = $1
		ORDER BY r.submitted_at DESC, r.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []model.ResultWithTest
	for rows.Next() {
		var res model.ResultWithTest
		if err := rows.Scan(
			&res.ID, &res.TestID, &res.UserID, &res.Answers, &res.Score,
			&res.CorrectCount, &res.WrongCount, &res.SubmittedAt,
			&res.TestTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return results, nil
}

// CountByTest возвращает количество сдач теста.
func (r *ResultRepository) CountByTest(ctx context.Context, testID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM results WHERE test_id = $1
	`, testID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return count, nil
}

// DeleteResultsByTest удаляет все результаты теста.
func (r *ResultRepository) DeleteResultsByTest(ctx context.Context, testID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM results WHERE test_id = $1`, testID)
	if err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}
	return nil
}
