package remove_teacher_handler

import (
	"github.com/IT-Aziz/testchecker/internal/dialog"
	"gopkg.in/telebot.v4"
)

// RemoveTeacherHandler структура для обработки кнопки «Снять преподавателя»
type RemoveTeacherHandler struct {
	engine *dialog.Engine
}

// NewRemoveTeacherHandler возвращает структуру обработчика
func NewRemoveTeacherHandler(engine *dialog.Engine) *RemoveTeacherHandler {
	return &RemoveTeacherHandler{engine: engine}
}

// Handle начинает диалог снятия роли преподавателя
func (h *RemoveTeacherHandler) Handle(c telebot.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return h.engine.StartTeacherRemoval(c)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *RemoveTeacherHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
