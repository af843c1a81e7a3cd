package take_test_handler

import (
	"strconv"

	"github.com/IT-Aziz/testchecker/internal/dialog"
	"github.com/IT-Aziz/testchecker/internal/messages"
	"gopkg.in/telebot.v4"
)

// TakeTestHandler структура для обработки кнопки «Пройти тест»
type TakeTestHandler struct {
	engine *dialog.Engine
}

// NewTakeTestHandler возвращает структуру обработчика
func NewTakeTestHandler(engine *dialog.Engine) *TakeTestHandler {
	return &TakeTestHandler{engine: engine}
}

// Handle начинает сдачу теста, ID которого пришёл в callback-данных
func (h *TakeTestHandler) Handle(c telebot.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}

	testID, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.TestNotFound)
	}
	return h.engine.StartTaking(c, testID)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *TakeTestHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
