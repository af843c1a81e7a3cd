package model

import "time"

// DeadlineLayout — формат срока сдачи теста (DD.MM.YYYY HH:mm).
const DeadlineLayout = "02.01.2006 15:04"

// Test — тест с ключом ответов.
type Test struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Answers   []string  `json:"answers"` // упорядоченный ключ ответов: строки вида "1-a", всегда непустой
	Deadline  time.Time `json:"deadline"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TestUpdate — частичное обновление теста. За одно редактирование меняется ровно одно поле.
type TestUpdate struct {
	Title    *string
	Answers  []string
	Deadline *time.Time
}
