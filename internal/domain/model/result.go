package model

import "time"

// Result — результат одной попытки. Неизменяем после создания: балл зафиксирован
// по ключу ответов на момент сдачи, последующие правки теста его не пересчитывают.
type Result struct {
	ID           int       `json:"id"`
	TestID       int       `json:"test_id"`
	UserID       int64     `json:"user_id"`
	Answers      []string  `json:"answers"`
	Score        float64   `json:"score"` // 0–100, один знак после запятой
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// ResultWithUser — строка join-выборки результатов с данными ученика.
type ResultWithUser struct {
	Result
	FirstName string
	LastName  string
}

// ResultWithTest — строка join-выборки результатов с данными теста.
type ResultWithTest struct {
	Result
	TestTitle string
}
