package add_teacher_handler

import (
	"github.com/IT-Aziz/testchecker/internal/dialog"
	"gopkg.in/telebot.v4"
)

// AddTeacherHandler структура для обработки кнопки «Назначить преподавателя»
type AddTeacherHandler struct {
	engine *dialog.Engine
}

// NewAddTeacherHandler возвращает структуру обработчика
func NewAddTeacherHandler(engine *dialog.Engine) *AddTeacherHandler {
	return &AddTeacherHandler{engine: engine}
}

// Handle начинает диалог назначения преподавателя
func (h *AddTeacherHandler) Handle(c telebot.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return h.engine.StartTeacherAssign(c)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *AddTeacherHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
