package app

import (
	"context"
	"fmt"
	"log"

	"github.com/IT-Aziz/testchecker/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDatabase устанавливает подключение к базе данных и создаёт схему
func InitDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(context.Background(), connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("%s: failed to create schema: %w", op, err)
	}

	log.Println("Database connected successfully!")
	return db, nil
}

// createSchema создаёт таблицы и индексы, если их ещё нет.
func createSchema(db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			telegram_id BIGINT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tests (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			answers TEXT[] NOT NULL,
			deadline TIMESTAMPTZ NOT NULL,
			created_by BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id SERIAL PRIMARY KEY,
			test_id INTEGER NOT NULL,
			user_id BIGINT NOT NULL,
			answers TEXT[] NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			correct_count INTEGER NOT NULL,
			wrong_count INTEGER NOT NULL,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// Одна сдача на пару (тест, ученик): повторные INSERT отбрасываются.
		`CREATE UNIQUE INDEX IF NOT EXISTS results_test_user_idx ON results (test_id, user_id)`,
		`CREATE INDEX IF NOT EXISTS tests_created_by_idx ON tests (created_by)`,
		`CREATE INDEX IF NOT EXISTS tests_deadline_idx ON tests (deadline)`,
		`CREATE INDEX IF NOT EXISTS results_user_idx ON results (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(context.Background(), stmt); err != nil {
			return err
		}
	}
	return nil
}
