package model

import "errors"

// Ошибки предметной области, проверяемые через errors.Is на границах слоёв.
var (
	// ErrAlreadyRegistered — повторная регистрация по тому же Telegram ID.
	ErrAlreadyRegistered = errors.New("user already registered")
	// ErrDuplicateResult — повторная сдача той же пары (тест, пользователь).
	ErrDuplicateResult = errors.New("result already exists")
	// ErrNotFound — изменяемая запись не найдена.
	ErrNotFound = errors.New("record not found")
)
