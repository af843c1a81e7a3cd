package edit_test_handler

import (
	"strconv"

	"github.com/IT-Aziz/testchecker/internal/dialog"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// EditTestHandler структура для обработки кнопки «Редактировать»
type EditTestHandler struct {
	engine *dialog.Engine
}

// NewEditTestHandler возвращает структуру обработчика
func NewEditTestHandler(engine *dialog.Engine) *EditTestHandler {
	return &EditTestHandler{engine: engine}
}

// Handle начинает диалог редактирования теста из callback-данных
func (h *EditTestHandler) Handle(c telebot.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}

	testID, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.TestNotFound)
	}
	return h.engine.StartEditing(c, testID)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *EditTestHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
