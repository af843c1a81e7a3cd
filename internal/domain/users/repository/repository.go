package repository

import (
	"context"
	"fmt"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository — доступ к пользователям в PostgreSQL.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает пользователя. Повторная вставка по тому же Telegram ID
// отклоняется без изменения существующей записи.
func (r *UserRepository) CreateUser(ctx context.Context, user model.User) error {
	ct, err := r.db.Exec(ctx, `
		INSERT INTO users (telegram_id, first_name, last_name, phone_number, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (telegram_id) DO NOTHING
	`, user.TelegramID, user.FirstName, user.LastName, user.PhoneNumber, user.Role)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrAlreadyRegistered
	}
	return nil
}

// GetUserByTelegramID ищет пользователя по Telegram ID.
func (r *UserRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, `
		SELECT telegram_id, first_name, last_name, phone_number, role, created_at, updated_at
		FROM users
		WHERE telegram_id = $1
	`, telegramID).Scan(
		&user.TelegramID, &user.FirstName, &user.LastName, &user.PhoneNumber,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Если пользователя нет, возвращаем nil
		}
		return nil, fmt.Errorf("failed to get user by telegram ID: %w", err)
	}
	return &user, nil
}

// UpdateUserRole обновляет роль пользователя.
func (r *UserRepository) UpdateUserRole(ctx context.Context, telegramID int64, role string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = now() WHERE telegram_id = $2
	`, role, telegramID)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// GetAllUsers возвращает всех пользователей в порядке регистрации.
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT telegram_id, first_name, last_name, phone_number, role, created_at, updated_at
		FROM users
		ORDER BY created_at, telegram_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.TelegramID, &user.FirstName, &user.LastName, &user.PhoneNumber,
			&user.Role, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return users, nil
}
