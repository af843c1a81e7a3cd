package model

import "time"

// Роли пользователей. Роль хранится на пользователе и меняется только администратором.
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
)

// User — зарегистрированный пользователь бота. Ключ — Telegram ID.
type User struct {
	TelegramID  int64     `json:"telegram_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName возвращает отображаемое имя пользователя.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
