package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestRepository — доступ к тестам в PostgreSQL.
type TestRepository struct {
	db *pgxpool.Pool
}

// NewTestRepository создает новый экземпляр TestRepository
func NewTestRepository(db *pgxpool.Pool) *TestRepository {
	return &TestRepository{db: db}
}

// CreateTest сохраняет новый тест и возвращает его ID.
func (r *TestRepository) CreateTest(ctx context.Context, test model.Test) (int, error) {
	var testID int
	err := r.db.QueryRow(ctx, `
		INSERT INTO tests (title, answers, deadline, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id
	`, test.Title, test.Answers, test.Deadline, test.CreatedBy).Scan(&testID)
	if err != nil {
		return 0, fmt.Errorf("failed to create test: %w", err)
	}
	return testID, nil
}

// GetTestByID ищет тест по ID.
func (r *TestRepository) GetTestByID(ctx context.Context, id int) (*model.Test, error) {
	var test model.Test
	err := r.db.QueryRow(ctx, `
		SELECT id, title, answers, deadline, created_by, created_at, updated_at
		FROM tests
		WHERE id = $1
	`, id).Scan(
		&test.ID, &test.Title, &test.Answers, &test.Deadline,
		&test.CreatedBy, &test.CreatedAt, &test.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Если теста нет, возвращаем nil
		}
		return nil, fmt.Errorf("failed to get test by ID: %w", err)
	}
	return &test, nil
}

// UpdateTitle обновляет только название теста.
func (r *TestRepository) UpdateTitle(ctx context.Context, id int, title string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE tests SET title = $1, updated_at = now() WHERE id = $2
	`, title, id)
	if err != nil {
		return fmt.Errorf("failed to update test title: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpdateAnswers обновляет только ключ ответов теста.
func (r *TestRepository) UpdateAnswers(ctx context.Context, id int, answers []string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE tests SET answers = $1, updated_at = now() WHERE id = $2
	`, answers, id)
	if err != nil {
		return fmt.Errorf("failed to update test answers: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpdateDeadline обновляет только срок сдачи теста.
func (r *TestRepository) UpdateDeadline(ctx context.Context, id int, deadline time.Time) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE tests SET deadline = $1, updated_at = now() WHERE id = $2
	`, deadline, id)
	if err != nil {
		return fmt.Errorf("failed to update test deadline: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteTest удаляет тест.
func (r *TestRepository) DeleteTest(ctx context.Context, id int) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete test: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// GetTestsByOwner возвращает тесты преподавателя, старые первыми.
func (r *TestRepository) GetTestsByOwner(ctx context.Context, ownerID int64) ([]model.Test, error) {
	return r.queryTests(ctx, `
		SELECT id, title, answers, deadline, created_by, created_at, updated_at
		FROM tests
		WHERE created_by = $1
		ORDER BY created_at, id
	`, ownerID)
}

// GetActiveTests возвращает тесты с неистёкшим сроком сдачи, старые первыми.
func (r *TestRepository) GetActiveTests(ctx context.Context, now time.Time) ([]model.Test, error) {
	return r.queryTests(ctx, `
		SELECT id, title, answers, deadline, created_by, created_at, updated_at
		FROM tests
		WHERE deadline > $1
		ORDER BY created_at, id
	`, now)
}

func (r *TestRepository) queryTests(ctx context.Context, query string, args ...any) ([]model.Test, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tests: %w", err)
	}
	defer rows.Close()

	var tests []model.Test
	for rows.Next() {
		var test model.Test
		if err := rows.Scan(
			&test.ID, &test.Title, &test.Answers, &test.Deadline,
			&test.CreatedBy, &test.CreatedAt, &test.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test: %w", err)
		}
		tests = append(tests, test)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return tests, nil
}
